package gointerp

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/osw/internal/adapters/script/gointerp/measure"
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

type arityReporter interface {
	arity(method string) (int, bool)
}

// wrap turns a registered definition into a value implementing one of the
// measure capabilities. Unknown definitions are kept as-is so resolution can
// report them.
func wrap(className string, def any) (any, error) {
	switch d := def.(type) {
	case measure.ModelMeasure:
		return &modelMeasure{info: newInfo(className, d.Name, d.Description, d.Taxonomy, d.ModelerDescription, d.Outputs), def: d}, nil
	case *measure.ModelMeasure:
		if d == nil {
			return nil, nilDefinition(className)
		}
		return wrap(className, *d)
	case measure.EnergyPlusMeasure:
		return &energyPlusMeasure{info: newInfo(className, d.Name, d.Description, d.Taxonomy, d.ModelerDescription, d.Outputs), def: d}, nil
	case *measure.EnergyPlusMeasure:
		if d == nil {
			return nil, nilDefinition(className)
		}
		return wrap(className, *d)
	case measure.ReportingMeasure:
		base := newInfo(className, d.Name, d.Description, d.Taxonomy, d.ModelerDescription, d.Outputs)
		if d.Arguments == nil && d.LegacyArguments != nil {
			return &legacyReportingMeasure{reportingMeasure{info: base, def: d}}, nil
		}
		return &reportingMeasure{info: base, def: d}, nil
	case *measure.ReportingMeasure:
		if d == nil {
			return nil, nilDefinition(className)
		}
		return wrap(className, *d)
	default:
		return def, nil
	}
}

func nilDefinition(className string) error {
	return zerr.With(zerr.Wrap(domain.ErrScriptEvaluation, "measure definition is nil"), "class", className)
}

type info struct {
	className          string
	name               string
	description        string
	taxonomy           string
	modelerDescription string
	outputs            []domain.OutputAttribute
}

func newInfo(className, name, description, taxonomy, modelerDescription string, outputs []domain.OutputAttribute) info {
	return info{
		className:          className,
		name:               name,
		description:        description,
		taxonomy:           taxonomy,
		modelerDescription: modelerDescription,
		outputs:            outputs,
	}
}

func (i info) ClassName() string          { return i.className }
func (i info) Name() string               { return i.name }
func (i info) Description() string        { return i.description }
func (i info) Taxonomy() string           { return i.taxonomy }
func (i info) ModelerDescription() string { return i.modelerDescription }

func (i info) Outputs(context.Context) ([]domain.OutputAttribute, error) {
	return slices.Clone(i.outputs), nil
}

// call invokes interpreted code, turning a panic into an error.
func call(ctx context.Context, className, method string, fn func()) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(zerr.With(zerr.Wrap(domain.ErrScriptEvaluation, fmt.Sprintf("panic: %v", r)), "class", className), "method", method)
		}
	}()
	fn()
	return nil
}

type modelMeasure struct {
	info
	def measure.ModelMeasure
}

func (m *modelMeasure) Arguments(ctx context.Context, model *domain.Model) (args []domain.Argument, err error) {
	if m.def.Arguments == nil {
		return nil, nil
	}
	err = call(ctx, m.className, "arguments", func() { args = m.def.Arguments(model) })
	return args, err
}

func (m *modelMeasure) Run(ctx context.Context, model *domain.Model, runner *domain.Recorder, args domain.ArgumentMap) (ok bool, err error) {
	if m.def.Run == nil {
		return runner.RegisterError("measure does not define run"), nil
	}
	err = call(ctx, m.className, "run", func() { ok = m.def.Run(model, runner, args) })
	return ok, err
}

func (m *modelMeasure) arity(method string) (int, bool) {
	switch method {
	case "arguments":
		return 1, true
	case "run":
		return 3, true
	}
	return 0, false
}

type energyPlusMeasure struct {
	info
	def measure.EnergyPlusMeasure
}

func (m *energyPlusMeasure) Arguments(ctx context.Context, ws *domain.Workspace) (args []domain.Argument, err error) {
	if m.def.Arguments == nil {
		return nil, nil
	}
	err = call(ctx, m.className, "arguments", func() { args = m.def.Arguments(ws) })
	return args, err
}

func (m *energyPlusMeasure) Run(ctx context.Context, ws *domain.Workspace, runner *domain.Recorder, args domain.ArgumentMap) (ok bool, err error) {
	if m.def.Run == nil {
		return runner.RegisterError("measure does not define run"), nil
	}
	err = call(ctx, m.className, "run", func() { ok = m.def.Run(ws, runner, args) })
	return ok, err
}

func (m *energyPlusMeasure) arity(method string) (int, bool) {
	return (&modelMeasure{}).arity(method)
}

type reportingMeasure struct {
	info
	def measure.ReportingMeasure
}

func (m *reportingMeasure) Arguments(ctx context.Context, model *domain.Model) (args []domain.Argument, err error) {
	if m.def.Arguments == nil {
		return nil, nil
	}
	err = call(ctx, m.className, "arguments", func() { args = m.def.Arguments(model) })
	return args, err
}

func (m *reportingMeasure) Run(ctx context.Context, runner *domain.Recorder, args domain.ArgumentMap) (ok bool, err error) {
	if m.def.Run == nil {
		return runner.RegisterError("measure does not define run"), nil
	}
	err = call(ctx, m.className, "run", func() { ok = m.def.Run(runner, args) })
	return ok, err
}

func (m *reportingMeasure) OutputRequests(ctx context.Context, runner *domain.Recorder, args domain.ArgumentMap) (objs []domain.WorkspaceObject, err error) {
	if m.def.OutputRequests == nil {
		return nil, nil
	}
	err = call(ctx, m.className, "output_requests", func() { objs = m.def.OutputRequests(runner, args) })
	return objs, err
}

func (m *reportingMeasure) arity(method string) (int, bool) {
	switch method {
	case "arguments":
		return 1, true
	case "run", "output_requests":
		return 2, true
	}
	return 0, false
}

// legacyReportingMeasure is a reporting measure whose arguments take no model.
type legacyReportingMeasure struct {
	reportingMeasure
}

func (m *legacyReportingMeasure) Arguments(ctx context.Context) (args []domain.Argument, err error) {
	err = call(ctx, m.className, "arguments", func() { args = m.def.LegacyArguments() })
	return args, err
}

func (m *legacyReportingMeasure) arity(method string) (int, bool) {
	if method == "arguments" {
		return 0, true
	}
	return m.reportingMeasure.arity(method)
}
