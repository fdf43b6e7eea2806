package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loaded is a runnable measure instance. Exactly one of Model, EnergyPlus and
// Reporting is set, matching Type.
type Loaded struct {
	Type       domain.MeasureType
	ClassName  string
	Language   domain.Language
	Directory  string
	Model      ports.ModelMeasure
	EnergyPlus ports.EnergyPlusMeasure
	Reporting  ports.ReportingMeasure
}

// Measure returns the common view of the instance.
func (l *Loaded) Measure() ports.Measure {
	switch l.Type {
	case domain.ModelMeasure:
		return l.Model
	case domain.EnergyPlusMeasure:
		return l.EnergyPlus
	default:
		return l.Reporting
	}
}

// Name returns the declared name, falling back to the class name.
func (l *Loaded) Name() string {
	if name := l.Measure().Name(); name != "" {
		return name
	}
	return l.ClassName
}

// Arguments computes the measure's argument definitions against clones of
// model and ws. Nil state is replaced by empty objects.
func (l *Loaded) Arguments(ctx context.Context, model *domain.Model, ws *domain.Workspace) ([]domain.Argument, error) {
	switch l.Type {
	case domain.ModelMeasure:
		return l.Model.Arguments(ctx, cloneModel(model))
	case domain.EnergyPlusMeasure:
		return l.EnergyPlus.Arguments(ctx, cloneWorkspace(ws))
	default:
		return l.Reporting.Arguments(ctx, cloneModel(model))
	}
}

// Info computes the measure's metadata against clones of model and ws.
func (l *Loaded) Info(ctx context.Context, model *domain.Model, ws *domain.Workspace) (*domain.MeasureInfo, error) {
	m := l.Measure()

	args, err := l.Arguments(ctx, model, ws)
	if err != nil {
		return nil, err
	}
	outputs, err := m.Outputs(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.MeasureInfo{
		MeasureType:        l.Type,
		ClassName:          l.ClassName,
		Name:               l.Name(),
		Description:        m.Description(),
		Taxonomy:           m.Taxonomy(),
		ModelerDescription: m.ModelerDescription(),
		Arguments:          args,
		Outputs:            outputs,
	}, nil
}

func cloneModel(model *domain.Model) *domain.Model {
	if model == nil {
		return domain.NewModel()
	}
	return model.Clone()
}

func cloneWorkspace(ws *domain.Workspace) *domain.Workspace {
	if ws == nil {
		return domain.NewWorkspace()
	}
	return ws.Clone()
}

// reportingAdapters bridges reporting measures by the arity of their
// arguments method.
var reportingAdapters = map[int]func(v any) (ports.ReportingMeasure, bool){
	1: func(v any) (ports.ReportingMeasure, bool) {
		m, ok := v.(ports.ReportingMeasure)
		return m, ok
	},
	0: func(v any) (ports.ReportingMeasure, bool) {
		m, ok := v.(ports.LegacyReportingMeasure)
		if !ok {
			return nil, false
		}
		return legacyReporting{m}, true
	},
}

// legacyReporting presents a legacy reporting measure as a current one.
type legacyReporting struct {
	ports.LegacyReportingMeasure
}

func (l legacyReporting) Arguments(ctx context.Context, _ *domain.Model) ([]domain.Argument, error) {
	return l.LegacyReportingMeasure.Arguments(ctx)
}

func classify(engine ports.ScriptEngine, h ports.Handle, className string) (*Loaded, error) {
	v, err := engine.Value(h)
	if err != nil {
		return nil, err
	}

	loaded := &Loaded{ClassName: className}
	switch m := v.(type) {
	case ports.ModelMeasure:
		loaded.Type, loaded.Model = domain.ModelMeasure, m
		return loaded, nil
	case ports.EnergyPlusMeasure:
		loaded.Type, loaded.EnergyPlus = domain.EnergyPlusMeasure, m
		return loaded, nil
	case ports.ReportingMeasure, ports.LegacyReportingMeasure:
	default:
		return nil, zerr.Wrap(domain.ErrUnknownMeasureType, fmt.Sprintf("%T is not a measure", v))
	}

	arity, err := engine.NumberOfArguments(h, "arguments")
	if err != nil {
		return nil, err
	}
	adapt, ok := reportingAdapters[arity]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrIncompatibleArity, "reporting measure arguments"), "arity", arity)
	}
	m, ok := adapt(v)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrIncompatibleArity, fmt.Sprintf("%T does not match its arity", v)), "arity", arity)
	}
	loaded.Type, loaded.Reporting = domain.ReportingMeasure, m
	return loaded, nil
}
