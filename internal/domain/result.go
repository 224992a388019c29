package domain

import "time"

// VerifyResult represents the outcome of one verification pass for a suite
type VerifyResult struct {
	Suite    string        // Name of the suite that was verified
	ExitCode int           // Runner exit code (0 = success)
	Success  bool          // Whether the pass succeeded
	Output   string        // Raw combined output from the runner
	Error    error         // Error if the pass could not run at all
	Duration time.Duration // Time taken for the pass
}

// VerifyResultsMeta contains metadata about a verification run
type VerifyResultsMeta struct {
	TotalSuites     int     `json:"total_suites"`
	FailedSuites    int     `json:"failed_suites"`
	PassedSuites    int     `json:"passed_suites"`
	FailedControls  int     `json:"failed_controls"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// VerifyResultsOutput is the complete output structure for a verification run
type VerifyResultsOutput struct {
	Meta    VerifyResultsMeta `json:"meta"`
	Details []ControlFailure  `json:"details"`
}
