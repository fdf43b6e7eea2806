package idf_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/osw/internal/adapters/idf"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
)

func newLoader(t *testing.T) *idf.Loader {
	t.Helper()
	l, err := idf.NewLoader()
	require.NoError(t, err)
	return l
}

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.idf")
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestLoader_LoadWorkspace(t *testing.T) {
	l := newLoader(t)

	ws, err := l.LoadWorkspace(write(t, "version: \"23.2\"\nobjects:\n  - type: Building\n    fields: [House]\n"), domain.WorkspaceSchema)
	require.NoError(t, err)
	assert.Equal(t, "House", ws.ObjectsOfType("building")[0].Name())

	_, err = l.LoadWorkspace(filepath.Join(t.TempDir(), "nope.idf"), "")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = l.LoadWorkspace(write(t, "version: \"23.2\"\nobjects: []\n"), "Radiance")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = l.LoadWorkspace(write(t, "version: \"23.2\"\nobjects:\n  - fields: [House]\n"), "")
	require.ErrorIs(t, err, domain.ErrValidation, "objects need a type")
}

func TestLoader_IsValid(t *testing.T) {
	l := newLoader(t)

	ws := domain.NewWorkspace()
	ws.AddObject(domain.WorkspaceObject{Type: "Building", Fields: []string{"House"}})

	require.NoError(t, l.IsValid(&domain.Workspace{}, ports.ValidityNone))
	require.ErrorIs(t, l.IsValid(&domain.Workspace{}, ports.ValidityDraft), domain.ErrValidation)
	require.NoError(t, l.IsValid(ws, ports.ValidityDraft))
	require.ErrorIs(t, l.IsValid(ws, ports.ValidityFinal), domain.ErrValidation)

	ws.AddObject(domain.WorkspaceObject{Type: "TIMESTEP", Fields: []string{"6"}})
	require.NoError(t, l.IsValid(ws, ports.ValidityFinal))
}

func TestLoader_SaveWorkspace(t *testing.T) {
	l := newLoader(t)
	ws := domain.NewWorkspace()
	ws.AddObject(domain.WorkspaceObject{Type: "Output:Variable", Fields: []string{"*", "Zone Mean Air Temperature", "Hourly"}})

	path := filepath.Join(t.TempDir(), "run", domain.OutputWorkspaceFileName)
	require.NoError(t, l.SaveWorkspace(path, ws))

	loaded, err := l.LoadWorkspace(path, "")
	require.NoError(t, err)
	assert.Equal(t, ws, loaded)
}

func TestTranslator_TranslateModel(t *testing.T) {
	model := domain.NewModel()
	handle := model.AddObject("Space", "Living")
	model.SetAttribute(handle, "zone", "Ground")
	model.SetAttribute(handle, "floor_area", "42")

	ws, err := idf.NewTranslator().TranslateModel(context.Background(), model)
	require.NoError(t, err)
	assert.Equal(t, []domain.WorkspaceObject{
		{Type: "Version", Fields: []string{domain.WorkspaceVersion}},
		{Type: "Space", Fields: []string{"Living", "42", "Ground"}},
	}, ws.Objects)

	empty, err := idf.NewTranslator().TranslateModel(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, empty.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = idf.NewTranslator().TranslateModel(ctx, model)
	require.ErrorIs(t, err, context.Canceled)
}
