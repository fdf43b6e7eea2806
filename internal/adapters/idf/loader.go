// Package idf reads, validates and produces simulation-input workspaces.
package idf

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.WorkspaceLoader = (*Loader)(nil)

// Loader reads .idf workspace documents.
type Loader struct {
	draft *gojsonschema.Schema
	final *gojsonschema.Schema
}

// NewLoader compiles the validity schemas and returns a Loader.
func NewLoader() (*Loader, error) {
	draft, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(draftSchema))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to compile draft workspace schema")
	}
	final, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(finalSchema))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to compile final workspace schema")
	}
	return &Loader{draft: draft, final: final}, nil
}

// LoadWorkspace parses the workspace at path and checks it at draft level.
func (l *Loader) LoadWorkspace(path, schema string) (*domain.Workspace, error) {
	if schema != "" && schema != SchemaEnergyPlus {
		return nil, zerr.With(zerr.Wrap(domain.ErrValidation, "unknown workspace schema"), "schema", schema)
	}

	//nolint:gosec // Path is chosen by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "workspace"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read workspace"), "path", path)
	}

	var ws domain.Workspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrValidation, err.Error()), "path", path)
	}

	if err := l.IsValid(&ws, ports.ValidityDraft); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return &ws, nil
}

// IsValid checks ws at the given level. ValidityNone accepts anything; the
// final level implies the draft level.
func (l *Loader) IsValid(ws *domain.Workspace, level ports.ValidityLevel) error {
	if level == ports.ValidityNone {
		return nil
	}
	if err := check(l.draft, ws); err != nil {
		return err
	}
	if level == ports.ValidityDraft {
		return nil
	}
	return check(l.final, ws)
}

func check(schema *gojsonschema.Schema, ws *domain.Workspace) error {
	result, err := schema.Validate(gojsonschema.NewGoLoader(ws))
	if err != nil {
		return zerr.Wrap(domain.ErrValidation, err.Error())
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			msgs = append(msgs, re.String())
		}
		return zerr.With(zerr.Wrap(domain.ErrValidation, "invalid workspace"), "errors", strings.Join(msgs, "; "))
	}
	return nil
}

// SaveWorkspace writes ws to path.
func (l *Loader) SaveWorkspace(path string, ws *domain.Workspace) error {
	data, err := yaml.Marshal(ws)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal workspace")
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create workspace directory"), "path", path)
	}
	//nolint:gosec // Path is chosen by the caller
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write workspace"), "path", path)
	}
	return nil
}
