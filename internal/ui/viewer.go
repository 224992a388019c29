package ui

import "cvr/internal/domain"

// Viewer displays verification failures in an interactive TUI
type Viewer interface {
	View(results *domain.VerifyResultsOutput) error
}
