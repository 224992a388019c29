package domain

import "path/filepath"

// Suite is a named collection of compliance test files under a base test directory.
type Suite struct {
	Name     string // Suite name, e.g. "default"
	BasePath string // Base test directory the suite lives under
}

// Dir returns the directory the suite's test files live in.
func (s Suite) Dir() string {
	return filepath.Join(s.BasePath, s.Name)
}
