package domain

// ControlFailure represents a failed control within a verified suite
type ControlFailure struct {
	ControlID string   `json:"control_id"`
	Suite     string   `json:"suite"`
	Title     string   `json:"title,omitempty"`
	Message   string   `json:"message"`
	Expected  string   `json:"expected,omitempty"`
	Actual    string   `json:"actual,omitempty"`
	File      string   `json:"file,omitempty"`
	Line      int      `json:"line,omitempty"`
	Details   []string `json:"details,omitempty"`
	Resolved  bool     `json:"resolved,omitempty"` // Track if failure is marked as resolved
}
