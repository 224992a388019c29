package discovery

import "testing"

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		suites   []string
		pattern  string
		expected int
	}{
		{
			name:     "empty pattern returns all",
			suites:   []string{"default", "os-hardening", "ssh-baseline"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard prefix",
			suites:   []string{"default", "os-hardening", "os-baseline"},
			pattern:  "os-*",
			expected: 2,
		},
		{
			name:     "substring match without wildcards",
			suites:   []string{"default", "os-hardening", "ssh-baseline"},
			pattern:  "baseline",
			expected: 1,
		},
		{
			name:     "no matches",
			suites:   []string{"default", "os-hardening"},
			pattern:  "windows*",
			expected: 0,
		},
		{
			name:     "empty suite list",
			suites:   []string{},
			pattern:  "os-*",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.suites, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d: %v", tt.expected, len(result), result)
			}
		})
	}
}
