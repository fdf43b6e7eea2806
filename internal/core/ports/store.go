package ports

import "go.trai.ch/osw/internal/core/domain"

// ResultStore persists step and run results.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResultStore interface {
	// PutStep writes a step record into its step directory.
	PutStep(record domain.StepRecord) error

	// PutRun writes the run summary into the run directory.
	PutRun(runDir string, result *domain.RunResult) error

	// GetRun reads the run summary from the run directory.
	// Returns nil, nil if not found.
	GetRun(runDir string) (*domain.RunResult, error)
}
