package star_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/osw/internal/adapters/script/star"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
)

const overhangScript = `
def _arguments(model):
    return [argument("depth", "Double", required = True, default = 0.5, min = 0)]

def _run(model, runner, args):
    if not runner.validate_user_arguments(args):
        return False
    handle = model.add_object("ShadingSurface", "overhang")
    model.set_attribute(handle, "depth", str(args["depth"]))
    runner.register_value("depth", args["depth"])
    runner.register_final_condition("added overhang")
    return True

AddOverhang = model_measure(
    name = "Add Overhang",
    description = "Adds a shading surface.",
    outputs = ["depth"],
    arguments = _arguments,
    run = _run,
)
`

const reportScript = `
def _requests(runner, args):
    return [workspace_object("Output:Variable", ["*", "Zone Mean Air Temperature", "Hourly"])]

def _run(runner, args):
    runner.register_info("reported")
    return True

ZoneReport = reporting_measure(name = "Zone Report", output_requests = _requests, run = _run)
`

const legacyReportScript = `
LegacyReport = reporting_measure(
    name = "Legacy Report",
    arguments = lambda: [argument("units", "Choice", choices = ["SI", "IP"], default = "SI")],
    run = lambda runner, args: True,
)
`

const loopScript = `
def _run(workspace, runner, args):
    while True:
        pass

Spin = energyplus_measure(name = "Spin", run = _run)
`

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measure.star")
	require.NoError(t, os.WriteFile(path, []byte(src), domain.PrivateFilePerm))
	return path
}

func loadMeasure(t *testing.T, e *star.Engine, src, className string) (ports.Handle, any) {
	t.Helper()
	h, err := e.LoadMeasure(context.Background(), writeScript(t, src), className)
	require.NoError(t, err)
	v, err := e.Value(h)
	require.NoError(t, err)
	return h, v
}

func TestEngine_ListClasses(t *testing.T) {
	ctx := context.Background()
	e := star.NewEngine()
	assert.Equal(t, domain.LanguageStarlark, e.Language())

	src := overhangScript + "\nSecond = model_measure(name = \"Second\")\n"
	require.NoError(t, e.LoadScript(ctx, writeScript(t, src)))
	require.NoError(t, e.Exec(ctx, e.Snippets().Prelude))

	h, err := e.Eval(ctx, e.Snippets().ListMeasureClasses)
	require.NoError(t, err)
	v, err := e.Value(h)
	require.NoError(t, err)
	assert.Equal(t, []string{"AddOverhang", "Second"}, v)
}

func TestEngine_ModelMeasure(t *testing.T) {
	ctx := context.Background()
	e := star.NewEngine()
	h, v := loadMeasure(t, e, overhangScript, "AddOverhang")

	n, err := e.NumberOfArguments(h, "arguments")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	m, ok := v.(ports.ModelMeasure)
	require.True(t, ok)
	assert.Equal(t, "Add Overhang", m.Name())
	outputs, err := m.Outputs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.OutputAttribute{{Name: "depth"}}, outputs)

	model := domain.NewModel()
	args, err := m.Arguments(ctx, model)
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, domain.ArgDouble, args[0].Type)
	assert.InDelta(t, 0.5, args[0].DefaultValue, 1e-9)
	require.NotNil(t, args[0].MinValue)

	bound := domain.NewArgumentMap(args)
	arg := bound["depth"]
	require.NoError(t, arg.SetValue("1.25"))
	bound["depth"] = arg

	runner := domain.NewRecorder(t.TempDir(), "")
	ok, err = m.Run(ctx, model, runner, bound)
	require.NoError(t, err)
	assert.True(t, ok)

	objs := model.ObjectsOfType("ShadingSurface")
	require.Len(t, objs, 1)
	assert.Equal(t, "1.25", objs[0].Attributes["depth"])

	result := runner.Result()
	assert.Equal(t, domain.StepSuccess, result.Value)
	assert.Equal(t, "added overhang", result.FinalCondition)
}

func TestEngine_ReportingMeasure(t *testing.T) {
	ctx := context.Background()
	e := star.NewEngine()
	_, v := loadMeasure(t, e, reportScript, "ZoneReport")

	m, ok := v.(ports.ReportingMeasure)
	require.True(t, ok)

	runner := domain.NewRecorder(t.TempDir(), "")
	objs, err := m.OutputRequests(ctx, runner, domain.ArgumentMap{})
	require.NoError(t, err)
	assert.Equal(t, []domain.WorkspaceObject{
		{Type: "Output:Variable", Fields: []string{"*", "Zone Mean Air Temperature", "Hourly"}},
	}, objs)

	ok, err = m.Run(ctx, runner, domain.ArgumentMap{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEngine_LegacyReportingMeasure(t *testing.T) {
	ctx := context.Background()
	e := star.NewEngine()
	h, v := loadMeasure(t, e, legacyReportScript, "LegacyReport")

	n, err := e.NumberOfArguments(h, "arguments")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	m, ok := v.(ports.LegacyReportingMeasure)
	require.True(t, ok)
	args, err := m.Arguments(ctx)
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, []string{"SI", "IP"}, args[0].Choices)
}

func TestEngine_Cancellation(t *testing.T) {
	e := star.NewEngine()
	_, v := loadMeasure(t, e, loopScript, "Spin")
	m, ok := v.(ports.EnergyPlusMeasure)
	require.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := m.Run(ctx, domain.NewWorkspace(), domain.NewRecorder(t.TempDir(), ""), domain.ArgumentMap{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEngine_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("syntax error", func(t *testing.T) {
		err := star.NewEngine().LoadScript(ctx, writeScript(t, "def broken(:\n"))
		require.ErrorIs(t, err, domain.ErrScriptEvaluation)
	})

	t.Run("runtime error in run", func(t *testing.T) {
		e := star.NewEngine()
		_, v := loadMeasure(t, e, "Bad = model_measure(name = \"Bad\", run = lambda m, r, a: 1 // 0)\n", "Bad")
		m, ok := v.(ports.ModelMeasure)
		require.True(t, ok)
		_, err := m.Run(ctx, domain.NewModel(), domain.NewRecorder(t.TempDir(), ""), domain.ArgumentMap{})
		require.ErrorIs(t, err, domain.ErrScriptEvaluation)
	})

	t.Run("undefined class", func(t *testing.T) {
		_, err := star.NewEngine().LoadMeasure(ctx, writeScript(t, overhangScript), "Missing")
		require.ErrorIs(t, err, domain.ErrScriptEvaluation)
	})
}
