package star

import (
	"fmt"
	"maps"
	"slices"

	"go.starlark.net/starlark"
	"go.trai.ch/osw/internal/core/domain"
)

// object is a Starlark value exposing a fixed set of attributes.
type object struct {
	typeName string
	attrs    starlark.StringDict
}

var _ starlark.HasAttrs = (*object)(nil)

func (o *object) String() string        { return "<" + o.typeName + ">" }
func (o *object) Type() string          { return o.typeName }
func (o *object) Freeze()               {}
func (o *object) Truth() starlark.Bool  { return starlark.True }
func (o *object) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: %s", o.typeName) }

func (o *object) Attr(name string) (starlark.Value, error) {
	return o.attrs[name], nil
}

func (o *object) AttrNames() []string {
	return slices.Sorted(maps.Keys(o.attrs))
}

func method(name string, fn builtinFunc) *starlark.Builtin {
	return starlark.NewBuiltin(name, fn)
}

func newModelValue(model *domain.Model) *object {
	return &object{typeName: "model", attrs: starlark.StringDict{
		"version": starlark.String(model.Version),
		"add_object": method("add_object", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var typ, name string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "type", &typ, "name?", &name); err != nil {
				return nil, err
			}
			return starlark.String(model.AddObject(typ, name)), nil
		}),
		"objects": method("objects", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var typ string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "type?", &typ); err != nil {
				return nil, err
			}
			objs := model.Objects
			if typ != "" {
				objs = model.ObjectsOfType(typ)
			}
			elems := make([]starlark.Value, len(objs))
			for i, obj := range objs {
				elems[i] = modelObjectDict(obj)
			}
			return starlark.NewList(elems), nil
		}),
		"set_name": method("set_name", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var handle, name string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "handle", &handle, "name", &name); err != nil {
				return nil, err
			}
			return starlark.Bool(model.SetName(handle, name)), nil
		}),
		"set_attribute": method("set_attribute", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var handle, key, value string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "handle", &handle, "key", &key, "value", &value); err != nil {
				return nil, err
			}
			return starlark.Bool(model.SetAttribute(handle, key, value)), nil
		}),
		"remove_object": method("remove_object", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var handle string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "handle", &handle); err != nil {
				return nil, err
			}
			return starlark.Bool(model.RemoveObject(handle)), nil
		}),
		"size": method("size", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return starlark.MakeInt(model.Len()), nil
		}),
	}}
}

func modelObjectDict(obj domain.ModelObject) *starlark.Dict {
	d := starlark.NewDict(4)
	_ = d.SetKey(starlark.String("handle"), starlark.String(obj.Handle))
	_ = d.SetKey(starlark.String("type"), starlark.String(obj.Type))
	_ = d.SetKey(starlark.String("name"), starlark.String(obj.Name))
	_ = d.SetKey(starlark.String("attributes"), fromGo(obj.Attributes))
	return d
}

func newWorkspaceValue(ws *domain.Workspace) *object {
	return &object{typeName: "workspace", attrs: starlark.StringDict{
		"version": starlark.String(ws.Version),
		"add_object": method("add_object", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var typ string
			var fields *starlark.List
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "type", &typ, "fields?", &fields); err != nil {
				return nil, err
			}
			ws.AddObject(domain.WorkspaceObject{Type: typ, Fields: toStrings(fields)})
			return starlark.None, nil
		}),
		"objects": method("objects", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var typ string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "type?", &typ); err != nil {
				return nil, err
			}
			objs := ws.Objects
			if typ != "" {
				objs = ws.ObjectsOfType(typ)
			}
			elems := make([]starlark.Value, len(objs))
			for i, obj := range objs {
				elems[i] = &workspaceObjectValue{obj: domain.WorkspaceObject{Type: obj.Type, Fields: slices.Clone(obj.Fields)}}
			}
			return starlark.NewList(elems), nil
		}),
		"remove_objects": method("remove_objects", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var typ string
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "type", &typ); err != nil {
				return nil, err
			}
			return starlark.MakeInt(ws.RemoveObjectsOfType(typ)), nil
		}),
		"size": method("size", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return starlark.MakeInt(ws.Len()), nil
		}),
	}}
}

func newRunnerValue(runner *domain.Recorder, bound domain.ArgumentMap) *object {
	message := func(name string, fn func(string)) *starlark.Builtin {
		return method(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var msg string
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0, &msg); err != nil {
				return nil, err
			}
			fn(msg)
			return starlark.None, nil
		})
	}

	sqlFile := starlark.Value(starlark.None)
	if path, ok := runner.LastSQLFile(); ok {
		sqlFile = starlark.String(path)
	}

	return &object{typeName: "runner", attrs: starlark.StringDict{
		"work_dir":      starlark.String(runner.WorkDir()),
		"last_sql_file": sqlFile,
		"register_error": method("register_error", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var msg string
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &msg); err != nil {
				return nil, err
			}
			return starlark.Bool(runner.RegisterError(msg)), nil
		}),
		"register_warning":           message("register_warning", runner.RegisterWarning),
		"register_info":              message("register_info", runner.RegisterInfo),
		"register_initial_condition": message("register_initial_condition", runner.RegisterInitialCondition),
		"register_final_condition":   message("register_final_condition", runner.RegisterFinalCondition),
		"register_as_not_applicable": message("register_as_not_applicable", runner.RegisterAsNotApplicable),
		"register_value": method("register_value", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			var value starlark.Value
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &name, &value); err != nil {
				return nil, err
			}
			runner.RegisterValue(name, toGo(value))
			return starlark.None, nil
		}),
		"halt": method("halt", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			runner.Halt()
			return starlark.None, nil
		}),
		// The dict a script receives carries no definitions, so validation
		// runs against the arguments bound for this call.
		"validate_user_arguments": method("validate_user_arguments", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var ignored starlark.Value
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0, &ignored); err != nil {
				return nil, err
			}
			return starlark.Bool(runner.ValidateUserArguments(bound)), nil
		}),
	}}
}

// argumentValue is an argument definition created by argument().
type argumentValue struct {
	arg domain.Argument
}

func (a *argumentValue) String() string        { return fmt.Sprintf("argument(%q, %q)", a.arg.Name, a.arg.Type) }
func (a *argumentValue) Type() string          { return "argument" }
func (a *argumentValue) Freeze()               {}
func (a *argumentValue) Truth() starlark.Bool  { return starlark.True }
func (a *argumentValue) Hash() (uint32, error) { return starlark.String(a.arg.Name).Hash() }

// workspaceObjectValue is a simulation-input object.
type workspaceObjectValue struct {
	obj domain.WorkspaceObject
}

var _ starlark.HasAttrs = (*workspaceObjectValue)(nil)

func (w *workspaceObjectValue) String() string {
	return fmt.Sprintf("workspace_object(%q, %q)", w.obj.Type, w.obj.Fields)
}
func (w *workspaceObjectValue) Type() string          { return "workspace_object" }
func (w *workspaceObjectValue) Freeze()               {}
func (w *workspaceObjectValue) Truth() starlark.Bool  { return starlark.True }
func (w *workspaceObjectValue) Hash() (uint32, error) { return starlark.String(w.obj.Type).Hash() }

func (w *workspaceObjectValue) Attr(name string) (starlark.Value, error) {
	switch name {
	case "type":
		return starlark.String(w.obj.Type), nil
	case "fields":
		return fromGo(slices.Clone(w.obj.Fields)), nil
	case "name":
		return starlark.String(w.obj.Name()), nil
	}
	return nil, nil
}

func (w *workspaceObjectValue) AttrNames() []string {
	return []string{"fields", "name", "type"}
}
