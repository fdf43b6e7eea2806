// Package results persists step and run results as JSON files.
package results

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResultStore = (*Store)(nil)

// Store implements ports.ResultStore with one file per step directory and one
// summary per run directory.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// PutStep writes the record into its step directory.
func (s *Store) PutStep(record domain.StepRecord) error {
	if record.WorkDir == "" {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, "step has no working directory"), "step", record.Index)
	}
	return writeJSON(filepath.Join(record.WorkDir, domain.StepResultFileName), record)
}

// PutRun writes the run summary into runDir.
func (s *Store) PutRun(runDir string, result *domain.RunResult) error {
	return writeJSON(filepath.Join(runDir, domain.RunResultFileName), result)
}

// GetRun reads the run summary from runDir.
func (s *Store) GetRun(runDir string) (*domain.RunResult, error) {
	filename := filepath.Join(runDir, domain.RunResultFileName)
	//nolint:gosec // Path is constructed from the run directory
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var result domain.RunResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return &result, nil
}

func writeJSON(filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from the run directory
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}

	return nil
}
