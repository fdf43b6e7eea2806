package measures_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/osw/internal/adapters/bcl"
	"go.trai.ch/osw/internal/adapters/fs"
	"go.trai.ch/osw/internal/adapters/idf"
	"go.trai.ch/osw/internal/adapters/osm"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/osw/internal/core/ports/mocks"
	"go.trai.ch/osw/internal/engine/measures"
	"go.trai.ch/osw/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

const houseModel = `version: 3.9.0
objects:
  - handle: "{1}"
    type: Space
    name: Living
    attributes:
      floor_area: "42"
`

type fakeMeasure struct {
	argCalls int
}

func (f *fakeMeasure) ClassName() string          { return "AddOverhang" }
func (f *fakeMeasure) Name() string               { return "Add Overhang" }
func (f *fakeMeasure) Description() string        { return "" }
func (f *fakeMeasure) Taxonomy() string           { return "" }
func (f *fakeMeasure) ModelerDescription() string { return "" }

func (f *fakeMeasure) Outputs(context.Context) ([]domain.OutputAttribute, error) {
	return nil, nil
}

func (f *fakeMeasure) Arguments(_ context.Context, model *domain.Model) ([]domain.Argument, error) {
	f.argCalls++
	choices := []string{}
	for _, obj := range model.ObjectsOfType("Space") {
		choices = append(choices, obj.Name)
	}
	return []domain.Argument{{Name: "space", Type: domain.ArgChoice, Choices: choices}}, nil
}

func (f *fakeMeasure) Run(context.Context, *domain.Model, *domain.Recorder, domain.ArgumentMap) (bool, error) {
	return true, nil
}

type fakeResolver struct {
	measure  *fakeMeasure
	resolves int
}

func (r *fakeResolver) Load(context.Context, ports.MeasureDescriptor) (*resolver.Loaded, error) {
	return &resolver.Loaded{Type: domain.ModelMeasure, ClassName: "AddOverhang", Model: r.measure}, nil
}

func (r *fakeResolver) Resolve(ctx context.Context, desc ports.MeasureDescriptor) (*domain.MeasureInfo, error) {
	r.resolves++
	loaded, _ := r.Load(ctx, desc)
	info, err := loaded.Info(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	if err := desc.UpdateFromInfo(info); err != nil {
		return nil, err
	}
	return info, desc.Save()
}

func newManager(t *testing.T) (*measures.Manager, *fakeResolver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	walker := fs.NewWalker()
	hasher := fs.NewHasher(walker)
	wsLoader, err := idf.NewLoader()
	require.NoError(t, err)

	res := &fakeResolver{measure: &fakeMeasure{}}
	return measures.NewManager(
		osm.NewLoader(),
		wsLoader,
		idf.NewTranslator(),
		bcl.NewLoader(hasher, walker),
		hasher,
		res,
		logger,
	), res
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func newMeasureDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "add_overhang")
	write(t, filepath.Join(dir, domain.MeasureFileName), "name: add_overhang\n")
	write(t, filepath.Join(dir, "measure.go"), "package main\n")
	return dir
}

func TestManager_GetModel_HouseScenario(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	path := filepath.Join(t.TempDir(), "house.osm")
	write(t, path, houseModel)

	first, err := m.GetModel(ctx, path, false)
	require.NoError(t, err)
	require.NotNil(t, first.Workspace)
	assert.Equal(t, 1, first.Model.Len())

	again, err := m.GetModel(ctx, path, false)
	require.NoError(t, err)
	assert.Same(t, first.Model, again.Model)
	assert.Equal(t, first.Checksum, again.Checksum)

	write(t, path, houseModel+`  - handle: "{2}"
    type: Space
    name: Kitchen
`)
	edited, err := m.GetModel(ctx, path, false)
	require.NoError(t, err)
	assert.NotEqual(t, first.Checksum, edited.Checksum)
	assert.Equal(t, 2, edited.Model.Len())

	require.NoError(t, os.Remove(path))
	_, err = m.GetModel(ctx, path, false)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, m.Snapshot().Paths(domain.NamespaceModel))
}

func TestManager_GetModel_Invalid(t *testing.T) {
	m, _ := newManager(t)
	path := filepath.Join(t.TempDir(), "broken.osm")
	write(t, path, "objects:\n  - type: Space\n")

	_, err := m.GetModel(context.Background(), path, false)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.True(t, domain.IsAbsent(err))
}

func TestManager_GetIdf(t *testing.T) {
	m, _ := newManager(t)
	path := filepath.Join(t.TempDir(), "in.idf")
	write(t, path, "version: \"23.2\"\nobjects:\n  - type: Building\n    fields: [House]\n")

	info, err := m.GetIdf(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Workspace.Len())
	assert.NotEmpty(t, info.Checksum)
}

func TestManager_GetAndUpdateMeasure(t *testing.T) {
	ctx := context.Background()
	m, res := newManager(t)
	dir := newMeasureDir(t)

	desc, err := m.GetAndUpdateMeasure(ctx, dir, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.resolves, "missing required fields forces an update")
	assert.Equal(t, "AddOverhang", desc.Metadata().ClassName)

	_, err = m.GetAndUpdateMeasure(ctx, dir, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.resolves, "a clean measure is served from cache")

	write(t, filepath.Join(dir, "measure.go"), "package main\n\n// edited\n")
	_, err = m.GetAndUpdateMeasure(ctx, dir, false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.resolves)

	_, err = m.GetAndUpdateMeasure(ctx, dir, true)
	require.NoError(t, err)
	assert.Equal(t, 3, res.resolves)
}

func TestManager_GetAndUpdateMeasure_Missing(t *testing.T) {
	m, _ := newManager(t)
	_, err := m.GetAndUpdateMeasure(context.Background(), filepath.Join(t.TempDir(), "nope"), false)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestManager_MeasureInfo_ModelDependent(t *testing.T) {
	ctx := context.Background()
	m, res := newManager(t)
	dir := newMeasureDir(t)
	modelPath := filepath.Join(t.TempDir(), "house.osm")
	write(t, modelPath, houseModel)

	info, err := m.GetMeasureInfo(ctx, dir, modelPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Living"}, info.Arguments[0].Choices)
	calls := res.measure.argCalls

	_, err = m.GetMeasureInfo(ctx, dir, modelPath)
	require.NoError(t, err)
	assert.Equal(t, calls, res.measure.argCalls, "info is cached per measure and model")

	write(t, modelPath, houseModel+`  - handle: "{2}"
    type: Space
    name: Kitchen
`)
	args, err := m.ComputeArguments(ctx, dir, modelPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Living", "Kitchen"}, args[0].Choices)

	args[0].Choices[0] = "mutated"
	again, err := m.GetMeasureInfo(ctx, dir, modelPath)
	require.NoError(t, err)
	assert.Equal(t, "Living", again.Arguments[0].Choices[0], "callers receive copies")
}

func TestManager_InvalidateAndReset(t *testing.T) {
	ctx := context.Background()
	m, res := newManager(t)
	dir := newMeasureDir(t)
	modelPath := filepath.Join(t.TempDir(), "house.osm")
	write(t, modelPath, houseModel)

	_, err := m.GetModel(ctx, modelPath, false)
	require.NoError(t, err)
	_, err = m.GetMeasureInfo(ctx, dir, "")
	require.NoError(t, err)

	snap := m.Snapshot()
	assert.Equal(t, []string{modelPath}, snap.Paths(domain.NamespaceModel))
	assert.Equal(t, []string{dir}, snap.Paths(domain.NamespaceMeasure))
	assert.Equal(t, []string{dir}, snap.Paths(domain.NamespaceMeasureInfo))

	assert.Equal(t, 1, m.Invalidate(filepath.Join(dir, "measure.go")))
	snap = m.Snapshot()
	assert.Empty(t, snap.Paths(domain.NamespaceMeasure))
	assert.Empty(t, snap.Paths(domain.NamespaceMeasureInfo))

	_, err = m.GetAndUpdateMeasure(ctx, dir, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.resolves, "reloading a clean measure does not resolve it again")

	m.Reset()
	snap = m.Snapshot()
	for _, ns := range []domain.CacheNamespace{
		domain.NamespaceModel, domain.NamespaceWorkspace, domain.NamespaceMeasure, domain.NamespaceMeasureInfo,
	} {
		assert.Empty(t, snap.Paths(ns))
	}
}

func TestStaleness(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("fresh", func(t *testing.T) {
		desc := mocks.NewMockMeasureDescriptor(ctrl)
		desc.EXPECT().CheckForUpdatesFiles().Return(false)
		desc.EXPECT().CheckForUpdatesMetadata().Return(false)
		desc.EXPECT().MissingRequiredFields().Return(false)
		desc.EXPECT().MissingGeneratedOutputs().Return(false)

		_, stale := measures.Staleness(desc)
		assert.False(t, stale)
	})

	t.Run("first check short-circuits", func(t *testing.T) {
		desc := mocks.NewMockMeasureDescriptor(ctrl)
		desc.EXPECT().CheckForUpdatesFiles().Return(false)
		desc.EXPECT().CheckForUpdatesMetadata().Return(true)

		reason, stale := measures.Staleness(desc)
		assert.True(t, stale)
		assert.Equal(t, "metadata-changed", reason)
	})
}
