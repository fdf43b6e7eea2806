package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/osw/internal/core/ports/mocks"
	"go.trai.ch/osw/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type fakeMeasure struct {
	name string
}

func (f fakeMeasure) ClassName() string          { return "Fake" }
func (f fakeMeasure) Name() string               { return f.name }
func (f fakeMeasure) Description() string        { return "fake measure" }
func (f fakeMeasure) Taxonomy() string           { return "Envelope" }
func (f fakeMeasure) ModelerDescription() string { return "" }

func (f fakeMeasure) Outputs(context.Context) ([]domain.OutputAttribute, error) {
	return []domain.OutputAttribute{{Name: "area"}}, nil
}

type fakeModelMeasure struct {
	fakeMeasure
	seen *domain.Model
}

func (f *fakeModelMeasure) Arguments(_ context.Context, model *domain.Model) ([]domain.Argument, error) {
	f.seen = model
	model.AddObject("ShadingSurface", "mutated")
	return []domain.Argument{{Name: "depth", Type: domain.ArgDouble}}, nil
}

func (f *fakeModelMeasure) Run(context.Context, *domain.Model, *domain.Recorder, domain.ArgumentMap) (bool, error) {
	return true, nil
}

type fakeLegacyReport struct {
	fakeMeasure
}

func (fakeLegacyReport) Arguments(context.Context) ([]domain.Argument, error) {
	return []domain.Argument{{Name: "units", Type: domain.ArgString}}, nil
}

func (fakeLegacyReport) Run(context.Context, *domain.Recorder, domain.ArgumentMap) (bool, error) {
	return true, nil
}

func (fakeLegacyReport) OutputRequests(context.Context, *domain.Recorder, domain.ArgumentMap) ([]domain.WorkspaceObject, error) {
	return nil, nil
}

type fixture struct {
	engine   *mocks.MockScriptEngine
	registry *mocks.MockEngineRegistry
	desc     *mocks.MockMeasureDescriptor
	resolver *resolver.Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		engine:   mocks.NewMockScriptEngine(ctrl),
		registry: mocks.NewMockEngineRegistry(ctrl),
		desc:     mocks.NewMockMeasureDescriptor(ctrl),
	}
	f.resolver = resolver.New(f.registry)

	f.desc.EXPECT().Metadata().Return(domain.MeasureMetadata{Name: "add_overhang"}).AnyTimes()
	f.desc.EXPECT().Directory().Return("/measures/add_overhang").AnyTimes()
	f.desc.EXPECT().Language().Return(domain.LanguageGo).AnyTimes()
	f.registry.EXPECT().Engine(domain.LanguageGo).Return(f.engine, nil).AnyTimes()
	f.engine.EXPECT().Snippets().Return(ports.Snippets{Prelude: "prelude", ListMeasureClasses: "list"}).AnyTimes()
	return f
}

func (f *fixture) expectClasses(classes ...string) {
	f.desc.EXPECT().PrimaryScriptPath().Return("/measures/add_overhang/measure.go", true)
	f.engine.EXPECT().LoadScript(gomock.Any(), "/measures/add_overhang/measure.go").Return(nil)
	f.engine.EXPECT().Exec(gomock.Any(), "prelude").Return(nil)
	f.engine.EXPECT().Eval(gomock.Any(), "list").Return(ports.Handle(1), nil)
	f.engine.EXPECT().Value(ports.Handle(1)).Return(classes, nil)
}

func TestResolver_Resolve_ModelMeasure(t *testing.T) {
	f := newFixture(t)
	f.expectClasses("AddOverhang")

	m := &fakeModelMeasure{}
	f.engine.EXPECT().LoadMeasure(gomock.Any(), "/measures/add_overhang/measure.go", "AddOverhang").Return(ports.Handle(2), nil)
	f.engine.EXPECT().Value(ports.Handle(2)).Return(m, nil)

	var updated *domain.MeasureInfo
	f.desc.EXPECT().UpdateFromInfo(gomock.Any()).DoAndReturn(func(info *domain.MeasureInfo) error {
		updated = info
		return nil
	})
	f.desc.EXPECT().Save().Return(nil)

	info, err := f.resolver.Resolve(context.Background(), f.desc)
	require.NoError(t, err)

	assert.Equal(t, domain.ModelMeasure, info.MeasureType)
	assert.Equal(t, "AddOverhang", info.ClassName)
	assert.Equal(t, "AddOverhang", info.Name, "empty declared name falls back to the class name")
	assert.Equal(t, []domain.OutputAttribute{{Name: "area"}}, info.Outputs)
	require.Len(t, info.Arguments, 1)
	assert.Same(t, info, updated)
	require.NotNil(t, m.seen)
	assert.Equal(t, 1, m.seen.Len(), "arguments run against a throwaway model")
}

func TestResolver_Load_ClassCount(t *testing.T) {
	for _, classes := range [][]string{nil, {"A", "B"}} {
		f := newFixture(t)
		f.expectClasses(classes...)

		_, err := f.resolver.Load(context.Background(), f.desc)
		require.ErrorIs(t, err, domain.ErrMeasureClassCount)
		assert.True(t, domain.IsResolutionError(err))
	}
}

func TestResolver_Load_MissingScript(t *testing.T) {
	f := newFixture(t)
	f.desc.EXPECT().PrimaryScriptPath().Return("", false)

	_, err := f.resolver.Load(context.Background(), f.desc)
	require.ErrorIs(t, err, domain.ErrMissingScript)
	assert.True(t, domain.IsResolutionError(err))
	assert.Contains(t, err.Error(), "add_overhang")
}

func TestResolver_Load_UnsupportedLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockEngineRegistry(ctrl)
	desc := mocks.NewMockMeasureDescriptor(ctrl)
	desc.EXPECT().Metadata().Return(domain.MeasureMetadata{Name: "x"}).AnyTimes()
	desc.EXPECT().Language().Return(domain.Language("ruby")).AnyTimes()
	registry.EXPECT().Engine(domain.Language("ruby")).Return(nil, domain.ErrUnsupportedLanguage)

	_, err := resolver.New(registry).Load(context.Background(), desc)
	require.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}

func TestResolver_Load_LegacyReporting(t *testing.T) {
	f := newFixture(t)
	f.expectClasses("Summary")

	f.engine.EXPECT().LoadMeasure(gomock.Any(), gomock.Any(), "Summary").Return(ports.Handle(2), nil)
	f.engine.EXPECT().Value(ports.Handle(2)).Return(fakeLegacyReport{fakeMeasure{name: "Summary Report"}}, nil)
	f.engine.EXPECT().NumberOfArguments(ports.Handle(2), "arguments").Return(0, nil)

	loaded, err := f.resolver.Load(context.Background(), f.desc)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportingMeasure, loaded.Type)
	assert.Equal(t, "Summary Report", loaded.Name())

	args, err := loaded.Arguments(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, "units", args[0].Name)
}

func TestResolver_Load_IncompatibleArity(t *testing.T) {
	f := newFixture(t)
	f.expectClasses("Summary")

	f.engine.EXPECT().LoadMeasure(gomock.Any(), gomock.Any(), "Summary").Return(ports.Handle(2), nil)
	f.engine.EXPECT().Value(ports.Handle(2)).Return(fakeLegacyReport{}, nil)
	f.engine.EXPECT().NumberOfArguments(ports.Handle(2), "arguments").Return(3, nil)

	_, err := f.resolver.Load(context.Background(), f.desc)
	require.ErrorIs(t, err, domain.ErrIncompatibleArity)
}

func TestResolver_Load_UnknownType(t *testing.T) {
	f := newFixture(t)
	f.expectClasses("NotAMeasure")

	f.engine.EXPECT().LoadMeasure(gomock.Any(), gomock.Any(), "NotAMeasure").Return(ports.Handle(2), nil)
	f.engine.EXPECT().Value(ports.Handle(2)).Return("just a string", nil)

	_, err := f.resolver.Load(context.Background(), f.desc)
	require.ErrorIs(t, err, domain.ErrUnknownMeasureType)
}

func TestGetAs(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockScriptEngine(ctrl)
	engine.EXPECT().Value(ports.Handle(7)).Return(42, nil).Times(2)

	n, err := resolver.GetAs[int](engine, 7)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = resolver.GetAs[string](engine, 7)
	require.ErrorIs(t, err, domain.ErrScriptEvaluation)
}
