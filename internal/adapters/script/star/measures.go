package star

import (
	"context"
	"fmt"
	"slices"

	"go.starlark.net/starlark"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ModelMeasure           = (*modelMeasure)(nil)
	_ ports.EnergyPlusMeasure      = (*energyPlusMeasure)(nil)
	_ ports.ReportingMeasure       = (*reportingMeasure)(nil)
	_ ports.LegacyReportingMeasure = (*legacyReportingMeasure)(nil)
)

// measureDef is the value model_measure, energyplus_measure and
// reporting_measure return.
type measureDef struct {
	kind               domain.MeasureType
	name               string
	description        string
	taxonomy           string
	modelerDescription string
	outputs            []domain.OutputAttribute
	arguments          starlark.Callable
	run                starlark.Callable
	outputRequests     starlark.Callable
}

func (d *measureDef) String() string        { return fmt.Sprintf("<%s %q>", d.kind, d.name) }
func (d *measureDef) Type() string          { return "measure" }
func (d *measureDef) Freeze()               {}
func (d *measureDef) Truth() starlark.Bool  { return starlark.True }
func (d *measureDef) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: measure") }

// arity reports the declared parameter count of a measure function. Missing
// functions report the count the measure type expects.
func (d *measureDef) arity(method string) (int, bool) {
	var fn starlark.Callable
	var expected int
	switch method {
	case "arguments":
		fn, expected = d.arguments, 1
	case "run":
		fn, expected = d.run, 3
		if d.kind == domain.ReportingMeasure {
			expected = 2
		}
	case "output_requests":
		if d.kind != domain.ReportingMeasure {
			return 0, false
		}
		fn, expected = d.outputRequests, 2
	default:
		return 0, false
	}
	if f, ok := fn.(*starlark.Function); ok {
		return f.NumParams(), true
	}
	return expected, true
}

func (e *Engine) wrap(className string, def *measureDef) any {
	b := base{engine: e, className: className, def: def}
	switch def.kind {
	case domain.ModelMeasure:
		return &modelMeasure{b}
	case domain.EnergyPlusMeasure:
		return &energyPlusMeasure{b}
	default:
		if n, _ := def.arity("arguments"); n == 0 {
			return &legacyReportingMeasure{reportingMeasure{b}}
		}
		return &reportingMeasure{b}
	}
}

type base struct {
	engine    *Engine
	className string
	def       *measureDef
}

func (b base) definition() *measureDef    { return b.def }
func (b base) ClassName() string          { return b.className }
func (b base) Name() string               { return b.def.name }
func (b base) Description() string        { return b.def.description }
func (b base) Taxonomy() string           { return b.def.taxonomy }
func (b base) ModelerDescription() string { return b.def.modelerDescription }

func (b base) Outputs(context.Context) ([]domain.OutputAttribute, error) {
	return slices.Clone(b.def.outputs), nil
}

func (b base) arguments(ctx context.Context, args ...starlark.Value) ([]domain.Argument, error) {
	if b.def.arguments == nil {
		return nil, nil
	}
	v, err := b.engine.call(ctx, b.className, "arguments", b.def.arguments, args...)
	if err != nil {
		return nil, err
	}
	out, err := toArguments(v)
	if err != nil {
		return nil, b.resultError("arguments", err)
	}
	return out, nil
}

func (b base) run(ctx context.Context, runner *domain.Recorder, bound domain.ArgumentMap, target ...starlark.Value) (bool, error) {
	if b.def.run == nil {
		return runner.RegisterError("measure does not define run"), nil
	}
	args := append(target, newRunnerValue(runner, bound), argumentsDict(bound))
	v, err := b.engine.call(ctx, b.className, "run", b.def.run, args...)
	if err != nil {
		return false, err
	}
	ok, isBool := v.(starlark.Bool)
	if !isBool {
		return false, b.resultError("run", fmt.Errorf("run must return a bool, got %s", v.Type()))
	}
	return bool(ok), nil
}

func (b base) resultError(method string, err error) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrScriptEvaluation, err.Error()), "class", b.className), "method", method)
}

type modelMeasure struct{ base }

func (m *modelMeasure) Arguments(ctx context.Context, model *domain.Model) ([]domain.Argument, error) {
	return m.arguments(ctx, newModelValue(model))
}

func (m *modelMeasure) Run(ctx context.Context, model *domain.Model, runner *domain.Recorder, args domain.ArgumentMap) (bool, error) {
	return m.run(ctx, runner, args, newModelValue(model))
}

type energyPlusMeasure struct{ base }

func (m *energyPlusMeasure) Arguments(ctx context.Context, ws *domain.Workspace) ([]domain.Argument, error) {
	return m.arguments(ctx, newWorkspaceValue(ws))
}

func (m *energyPlusMeasure) Run(ctx context.Context, ws *domain.Workspace, runner *domain.Recorder, args domain.ArgumentMap) (bool, error) {
	return m.run(ctx, runner, args, newWorkspaceValue(ws))
}

type reportingMeasure struct{ base }

func (m *reportingMeasure) Arguments(ctx context.Context, model *domain.Model) ([]domain.Argument, error) {
	return m.arguments(ctx, newModelValue(model))
}

func (m *reportingMeasure) Run(ctx context.Context, runner *domain.Recorder, args domain.ArgumentMap) (bool, error) {
	return m.run(ctx, runner, args)
}

func (m *reportingMeasure) OutputRequests(ctx context.Context, runner *domain.Recorder, args domain.ArgumentMap) ([]domain.WorkspaceObject, error) {
	if m.def.outputRequests == nil {
		return nil, nil
	}
	v, err := m.engine.call(ctx, m.className, "output_requests", m.def.outputRequests, newRunnerValue(runner, args), argumentsDict(args))
	if err != nil {
		return nil, err
	}
	objs, err := toWorkspaceObjects(v)
	if err != nil {
		return nil, m.resultError("output_requests", err)
	}
	return objs, nil
}

type legacyReportingMeasure struct{ reportingMeasure }

func (m *legacyReportingMeasure) Arguments(ctx context.Context) ([]domain.Argument, error) {
	return m.arguments(ctx)
}
