package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

// ControlScanner extracts control declarations from suite files
type ControlScanner struct{}

// NewControlScanner creates a new ControlScanner
func NewControlScanner() *ControlScanner {
	return &ControlScanner{}
}

// Declarations like:
//   control 'ssh-01' do
//   control "nginx-version" do
//   describe command('sshd') do   (anonymous, not captured)
var controlPattern = regexp.MustCompile(`(?m)^\s*control\s+['"]([^'"]+)['"]`)

// FindControls returns the control IDs declared in a suite file, sorted and
// de-duplicated.
func (s *ControlScanner) FindControls(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	seen := make(map[string]bool)
	for _, match := range controlPattern.FindAllStringSubmatch(string(content), -1) {
		if len(match) > 1 {
			seen[match[1]] = true
		}
	}

	var controls []string
	for id := range seen {
		controls = append(controls, id)
	}
	sort.Strings(controls)

	return controls, nil
}
