package storage

import (
	"time"

	"cvr/internal/config"
	"cvr/internal/domain"
)

// Storage persists and loads verification results (e.g. for the failures viewer).
type Storage interface {
	Save(results []domain.VerifyResult, failures []domain.ControlFailure, duration time.Duration, workers int) error
	Load() (*domain.VerifyResultsOutput, error)
	// SaveOutput writes the full output (e.g. after resolve-marking updates).
	SaveOutput(output *domain.VerifyResultsOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
