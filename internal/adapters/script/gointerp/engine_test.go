package gointerp_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/osw/internal/adapters/script/gointerp"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
)

const overhangScript = `package main

import "osw/measure"

var _ = measure.Register("AddOverhang", measure.ModelMeasure{
	Name:        "Add Overhang",
	Description: "Adds a shading surface.",
	Arguments: func(model *measure.Model) []measure.Argument {
		return []measure.Argument{{Name: "depth", Type: measure.Double, Required: true, DefaultValue: 0.5}}
	},
	Run: func(model *measure.Model, runner *measure.Runner, args measure.Arguments) bool {
		model.AddObject("ShadingSurface", "overhang")
		runner.RegisterValue("depth", args.Float("depth"))
		return true
	},
})
`

const legacyReportScript = `package main

import "osw/measure"

var _ = measure.Register("SummaryReport", measure.ReportingMeasure{
	Name: "Summary Report",
	LegacyArguments: func() []measure.Argument {
		return nil
	},
	Run: func(runner *measure.Runner, args measure.Arguments) bool {
		runner.RegisterInfo("reported")
		return true
	},
})
`

const twoClassScript = `package main

import "osw/measure"

var _ = measure.Register("First", measure.ModelMeasure{Name: "First"})
var _ = measure.Register("Second", measure.ModelMeasure{Name: "Second"})
`

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measure.go")
	require.NoError(t, os.WriteFile(path, []byte(src), domain.PrivateFilePerm))
	return path
}

func listClasses(t *testing.T, e *gointerp.Engine, path string) []string {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.LoadScript(ctx, path))
	require.NoError(t, e.Exec(ctx, e.Snippets().Prelude))
	h, err := e.Eval(ctx, e.Snippets().ListMeasureClasses)
	require.NoError(t, err)
	v, err := e.Value(h)
	require.NoError(t, err)
	classes, ok := v.([]string)
	require.True(t, ok, "class list has type %T", v)
	return classes
}

func TestEngine_ListClasses(t *testing.T) {
	e := gointerp.NewEngine()
	assert.Equal(t, domain.LanguageGo, e.Language())

	assert.Equal(t, []string{"AddOverhang"}, listClasses(t, e, writeScript(t, overhangScript)))
	assert.Equal(t, []string{"First", "Second"}, listClasses(t, e, writeScript(t, twoClassScript)))
}

func TestEngine_ModelMeasure(t *testing.T) {
	ctx := context.Background()
	path := writeScript(t, overhangScript)
	e := gointerp.NewEngine()

	h, err := e.LoadMeasure(ctx, path, "AddOverhang")
	require.NoError(t, err)

	n, err := e.NumberOfArguments(h, "arguments")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	v, err := e.Value(h)
	require.NoError(t, err)
	m, ok := v.(ports.ModelMeasure)
	require.True(t, ok)
	assert.Equal(t, "AddOverhang", m.ClassName())
	assert.Equal(t, "Add Overhang", m.Name())

	model := domain.NewModel()
	args, err := m.Arguments(ctx, model)
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, "depth", args[0].Name)

	runner := domain.NewRecorder(t.TempDir(), "")
	ok, err = m.Run(ctx, model, runner, domain.NewArgumentMap(args))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, model.Len())

	result := runner.Result()
	require.Len(t, result.Values, 1)
	assert.InDelta(t, 0.5, result.Values[0].Value, 1e-9)
}

func TestEngine_LegacyReportingMeasure(t *testing.T) {
	ctx := context.Background()
	e := gointerp.NewEngine()

	h, err := e.LoadMeasure(ctx, writeScript(t, legacyReportScript), "SummaryReport")
	require.NoError(t, err)

	n, err := e.NumberOfArguments(h, "arguments")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	v, err := e.Value(h)
	require.NoError(t, err)
	legacy, ok := v.(ports.LegacyReportingMeasure)
	require.True(t, ok)
	_, isModern := v.(ports.ReportingMeasure)
	assert.False(t, isModern)

	runner := domain.NewRecorder(t.TempDir(), "")
	ok, err = legacy.Run(ctx, runner, domain.ArgumentMap{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"reported"}, runner.Result().Info)
}

func TestEngine_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("syntax error", func(t *testing.T) {
		e := gointerp.NewEngine()
		err := e.LoadScript(ctx, writeScript(t, "package main\n\nfunc {"))
		require.ErrorIs(t, err, domain.ErrScriptEvaluation)
	})

	t.Run("eval without script", func(t *testing.T) {
		e := gointerp.NewEngine()
		_, err := e.Eval(ctx, "1")
		require.ErrorIs(t, err, domain.ErrScriptEvaluation)
	})

	t.Run("unknown class", func(t *testing.T) {
		e := gointerp.NewEngine()
		_, err := e.LoadMeasure(ctx, writeScript(t, overhangScript), "Missing")
		require.ErrorIs(t, err, domain.ErrScriptEvaluation)
	})

	t.Run("unknown handle", func(t *testing.T) {
		e := gointerp.NewEngine()
		_, err := e.Value(ports.Handle(42))
		require.ErrorIs(t, err, domain.ErrScriptEvaluation)
	})
}
