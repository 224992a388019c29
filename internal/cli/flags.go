package cli

import "cvr/internal/config"

// Flags holds command-line flags
type Flags struct {
	Workers      int
	SuiteFilter  string
	TestBasePath string
	Format       string
	LogLevel     string
	FailFast     bool
	OpenFailures bool
	ShowHelpers  bool
	ShowControls bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:      f.Workers,
		SuiteFilter:  f.SuiteFilter,
		TestBasePath: f.TestBasePath,
		Format:       f.Format,
		LogLevel:     f.LogLevel,
		FailFast:     f.FailFast,
		OpenFailures: f.OpenFailures,
		ShowHelpers:  f.ShowHelpers,
		ShowControls: f.ShowControls,
	}
}
