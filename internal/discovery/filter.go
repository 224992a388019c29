package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters suites by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters suite names by pattern using wildcard matching.
// Supports patterns like "os-*" or "*hardening*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(suites []string, pattern string) []string {
	if pattern == "" {
		return suites
	}

	var filtered []string
	for _, suite := range suites {
		if matched, err := filepath.Match(pattern, suite); err == nil && matched {
			filtered = append(filtered, suite)
			continue
		}

		if !strings.ContainsAny(pattern, "*?") && strings.Contains(suite, pattern) {
			filtered = append(filtered, suite)
		}
	}

	return filtered
}
