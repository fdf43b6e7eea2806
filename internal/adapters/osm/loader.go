// Package osm reads and writes building model documents.
package osm

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ModelLoader = (*Loader)(nil)

// Loader reads .osm model documents.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// LoadModel parses and validates the model at path.
func (l *Loader) LoadModel(path string) (*domain.Model, error) {
	//nolint:gosec // Path is chosen by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "model"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read model"), "path", path)
	}

	var model domain.Model
	if err := yaml.Unmarshal(data, &model); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrValidation, err.Error()), "path", path)
	}

	if err := l.validate.Struct(&model); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrValidation, "invalid model"), "path", path), "fields", fieldNames(verrs))
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrValidation, err.Error()), "path", path)
	}

	return &model, nil
}

// SaveModel writes model to path.
func (l *Loader) SaveModel(path string, model *domain.Model) error {
	data, err := yaml.Marshal(model)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal model")
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create model directory"), "path", path)
	}
	//nolint:gosec // Path is chosen by the caller
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write model"), "path", path)
	}
	return nil
}

func fieldNames(verrs validator.ValidationErrors) []string {
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Namespace()+":"+fe.Tag())
	}
	return out
}
