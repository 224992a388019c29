package parser

import "cvr/internal/domain"

// Parser extracts control failures from a verification pass
type Parser interface {
	ParseFailures(result domain.VerifyResult) []domain.ControlFailure
}
