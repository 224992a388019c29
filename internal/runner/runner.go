// Package runner wraps the external compliance-test execution engine.
package runner

import (
	"context"

	"cvr/internal/logger"
)

// Options is the backend-specific option mapping handed to the runner.
// It is built fresh for every verification pass and never reused.
type Options map[string]any

// Runner executes compliance tests against a target instance.
type Runner interface {
	// AddTests registers suite and helper files to execute.
	AddTests(files []string)
	// Run executes the registered tests and returns the process exit code.
	// 0 means success; any other value is a failure signal.
	Run(ctx context.Context) (int, error)
}

// Factory creates a Runner for a single verification pass.
type Factory func(opts Options, log *logger.Logger) Runner
