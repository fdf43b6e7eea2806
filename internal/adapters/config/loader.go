// Package config loads workflow files and run settings.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.WorkflowLoader for YAML and JSON workflow files.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

var _ ports.WorkflowLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Find returns the first workflow file in cwd or one of its parents.
func Find(cwd string) (string, error) {
	current := cwd
	for {
		for _, name := range workflowFileNames {
			candidate := filepath.Join(current, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", zerr.With(zerr.Wrap(domain.ErrNotFound, "no workflow file"), "cwd", cwd)
}

// Load reads, validates and normalises the workflow at path. Relative paths
// in the file are resolved against its directory.
func (l *Loader) Load(path string) (*domain.Workflow, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkflowReadFailed, err.Error()), "path", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "workflow file"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkflowReadFailed, err.Error()), "path", path)
	}

	var wf domain.Workflow
	if err := decode(path, data, &wf); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkflowParseFailed, err.Error()), "path", path)
	}

	if err := l.validate.Struct(&wf); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace()+":"+fe.Tag())
			}
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrWorkflowInvalid, "invalid workflow"), "path", path), "fields", fields)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkflowInvalid, err.Error()), "path", path)
	}

	normalize(&wf, path)
	if l.Logger != nil && len(wf.Steps) == 0 {
		l.Logger.Warn(fmt.Sprintf("workflow %s has no steps", path))
	}
	return &wf, nil
}

func decode(path string, data []byte, wf *domain.Workflow) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(wf)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(wf); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// normalize resolves paths against the workflow directory and fills defaults.
func normalize(wf *domain.Workflow, path string) {
	base := filepath.Dir(path)
	wf.Path = path

	wf.SeedFile = resolve(base, wf.SeedFile)
	if wf.WeatherFile != "" {
		wf.WeatherFile = resolve(base, wf.WeatherFile)
	}
	if wf.RunDirectory == "" {
		wf.RunDirectory = filepath.Join(base, domain.DefaultRunPath())
	} else {
		wf.RunDirectory = resolve(base, wf.RunDirectory)
	}
	if len(wf.MeasurePaths) == 0 {
		wf.MeasurePaths = []string{filepath.Join(base, "measures")}
	}
	for i, p := range wf.MeasurePaths {
		wf.MeasurePaths[i] = resolve(base, p)
	}
	for i := range wf.Steps {
		wf.Steps[i].Index = i
	}
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
