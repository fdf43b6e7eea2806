package star

import (
	"fmt"
	"slices"

	"go.starlark.net/starlark"
	"go.trai.ch/osw/internal/core/domain"
)

func (e *Engine) builtins() starlark.StringDict {
	return starlark.StringDict{
		"model_measure":      starlark.NewBuiltin("model_measure", measureBuiltin(domain.ModelMeasure)),
		"energyplus_measure": starlark.NewBuiltin("energyplus_measure", measureBuiltin(domain.EnergyPlusMeasure)),
		"reporting_measure":  starlark.NewBuiltin("reporting_measure", measureBuiltin(domain.ReportingMeasure)),
		"argument":           starlark.NewBuiltin("argument", argumentBuiltin),
		"workspace_object":   starlark.NewBuiltin("workspace_object", workspaceObjectBuiltin),
		"measure_classes":    starlark.NewBuiltin("measure_classes", e.measureClasses),
	}
}

// measureClasses lists the globals bound to a measure, sorted by name.
func (e *Engine) measureClasses(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	var names []string
	for name, v := range e.globals {
		if _, ok := v.(*measureDef); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	elems := make([]starlark.Value, len(names))
	for i, name := range names {
		elems[i] = starlark.String(name)
	}
	return starlark.NewList(elems), nil
}

type builtinFunc func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error)

func measureBuiltin(kind domain.MeasureType) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		def := &measureDef{kind: kind}
		var outputs *starlark.List
		var arguments, run, outputRequests starlark.Value = starlark.None, starlark.None, starlark.None

		pairs := []any{
			"name", &def.name,
			"description?", &def.description,
			"taxonomy?", &def.taxonomy,
			"modeler_description?", &def.modelerDescription,
			"arguments?", &arguments,
			"run?", &run,
			"outputs?", &outputs,
		}
		if kind == domain.ReportingMeasure {
			pairs = append(pairs, "output_requests?", &outputRequests)
		}
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, pairs...); err != nil {
			return nil, err
		}

		var err error
		if def.arguments, err = callable(b.Name(), "arguments", arguments); err != nil {
			return nil, err
		}
		if def.run, err = callable(b.Name(), "run", run); err != nil {
			return nil, err
		}
		if def.outputRequests, err = callable(b.Name(), "output_requests", outputRequests); err != nil {
			return nil, err
		}
		if def.outputs, err = toOutputs(outputs); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		return def, nil
	}
}

func callable(fn, param string, v starlark.Value) (starlark.Callable, error) {
	if v == starlark.None {
		return nil, nil
	}
	c, ok := v.(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("%s: %s must be callable, got %s", fn, param, v.Type())
	}
	return c, nil
}

func toOutputs(list *starlark.List) ([]domain.OutputAttribute, error) {
	if list == nil {
		return nil, nil
	}
	out := make([]domain.OutputAttribute, 0, list.Len())
	for i := range list.Len() {
		switch v := list.Index(i).(type) {
		case starlark.String:
			out = append(out, domain.OutputAttribute{Name: string(v)})
		case *starlark.Dict:
			attr := domain.OutputAttribute{
				Name:        dictString(v, "name"),
				DisplayName: dictString(v, "display_name"),
				Type:        dictString(v, "type"),
				Units:       dictString(v, "units"),
			}
			if attr.Name == "" {
				return nil, fmt.Errorf("output %d has no name", i)
			}
			out = append(out, attr)
		default:
			return nil, fmt.Errorf("output %d must be a string or dict, got %s", i, v.Type())
		}
	}
	return out, nil
}

func dictString(d *starlark.Dict, key string) string {
	v, found, _ := d.Get(starlark.String(key))
	if !found {
		return ""
	}
	s, _ := starlark.AsString(v)
	return s
}

func argumentBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		arg                   domain.Argument
		typ                   string
		def, minV, maxV       starlark.Value = starlark.None, starlark.None, starlark.None
		choices, choiceLabels *starlark.List
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"name", &arg.Name,
		"type", &typ,
		"display_name?", &arg.DisplayName,
		"description?", &arg.Description,
		"units?", &arg.Units,
		"required?", &arg.Required,
		"model_dependent?", &arg.ModelDependent,
		"default?", &def,
		"choices?", &choices,
		"choice_display_names?", &choiceLabels,
		"min?", &minV,
		"max?", &maxV,
	); err != nil {
		return nil, err
	}

	arg.Type = domain.ArgumentType(typ)
	arg.DefaultValue = toGo(def)
	arg.Choices = toStrings(choices)
	arg.ChoiceDisplayNames = toStrings(choiceLabels)

	var err error
	if arg.MinValue, err = toBound(minV); err != nil {
		return nil, fmt.Errorf("%s: min: %w", b.Name(), err)
	}
	if arg.MaxValue, err = toBound(maxV); err != nil {
		return nil, fmt.Errorf("%s: max: %w", b.Name(), err)
	}
	return &argumentValue{arg: arg}, nil
}

func toBound(v starlark.Value) (*float64, error) {
	if v == starlark.None {
		return nil, nil
	}
	f, ok := starlark.AsFloat(v)
	if !ok {
		return nil, fmt.Errorf("got %s, want number", v.Type())
	}
	return &f, nil
}

func workspaceObjectBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var typ string
	var fields *starlark.List
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "type", &typ, "fields?", &fields); err != nil {
		return nil, err
	}
	return &workspaceObjectValue{obj: domain.WorkspaceObject{Type: typ, Fields: toStrings(fields)}}, nil
}
