package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/osw/internal/adapters/config"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func TestLoader_Load_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.WorkflowFileName)
	write(t, path, `
seed_file: models/house.osm
weather_file: /weather/denver.epw
measure_paths: [measures, /shared/measures]
steps:
  - measure_dir_name: wwr
    arguments:
      wwr: 0.4
  - measure_dir_name: report
    skip: true
`)

	wf, err := config.NewLoader(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, wf.Path)
	assert.Equal(t, filepath.Join(dir, "models", "house.osm"), wf.SeedFile)
	assert.Equal(t, "/weather/denver.epw", wf.WeatherFile)
	assert.Equal(t, []string{filepath.Join(dir, "measures"), "/shared/measures"}, wf.MeasurePaths)
	assert.Equal(t, filepath.Join(dir, ".osw", "run"), wf.RunDirectory)
	require.Len(t, wf.Steps, 2)
	assert.Equal(t, 1, wf.Steps[1].Index)
	assert.InDelta(t, 0.4, wf.Steps[0].Arguments["wwr"], 1e-9)
	assert.True(t, wf.Steps[1].Skip)
}

func TestLoader_Load_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workflow.osw.json")
	write(t, path, `{
  "seed_file": "house.osm",
  "run_directory": "out",
  "steps": [{"measure_dir_name": "wwr", "arguments": {"wwr": 0.3}}]
}`)

	wf, err := config.NewLoader(nil).Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "house.osm"), wf.SeedFile)
	assert.Equal(t, filepath.Join(dir, "out"), wf.RunDirectory)
	assert.Equal(t, []string{filepath.Join(dir, "measures")}, wf.MeasurePaths)
	require.Len(t, wf.Steps, 1)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{name: "missing seed", file: "workflow.osw.yaml", content: "steps: []\n", want: domain.ErrWorkflowInvalid},
		{name: "missing measure dir", file: "workflow.osw.yaml", content: "seed_file: a.osm\nsteps:\n  - name: x\n", want: domain.ErrWorkflowInvalid},
		{name: "unknown field", file: "workflow.osw.yaml", content: "seed_file: a.osm\nseed: b\n", want: domain.ErrWorkflowParseFailed},
		{name: "bad json", file: "workflow.osw.json", content: "{", want: domain.ErrWorkflowParseFailed},
		{name: "empty", file: "workflow.osw.yaml", content: "", want: domain.ErrWorkflowInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			write(t, path, tt.content)

			_, err := config.NewLoader(nil).Load(path)
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := config.NewLoader(nil).Load(filepath.Join(t.TempDir(), "none.osw.yaml"))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestLoader_Load_WarnsOnEmptyWorkflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	path := filepath.Join(t.TempDir(), domain.WorkflowFileName)
	write(t, path, "seed_file: house.osm\n")

	wf, err := config.NewLoader(log).Load(path)
	require.NoError(t, err)
	assert.Empty(t, wf.Steps)
}

func TestLoader_Find(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, domain.WorkflowFileName)
	write(t, path, "seed_file: house.osm\n")
	nested := filepath.Join(root, "measures", "wwr")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	found, err := config.Find(nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = config.Find(t.TempDir())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
