package star

import (
	"fmt"
	"maps"
	"slices"

	"go.starlark.net/starlark"
	"go.trai.ch/osw/internal/core/domain"
)

// toGo converts a Starlark value into its plain Go counterpart. Lists of
// strings become []string.
func toGo(v starlark.Value) any {
	switch t := v.(type) {
	case nil, starlark.NoneType:
		return nil
	case starlark.Bool:
		return bool(t)
	case starlark.Int:
		if n, ok := t.Int64(); ok {
			return int(n)
		}
		return t.String()
	case starlark.Float:
		return float64(t)
	case starlark.String:
		return string(t)
	case *starlark.List:
		return sequenceToGo(t)
	case starlark.Tuple:
		return sequenceToGo(t)
	case *starlark.Dict:
		out := make(map[string]any, t.Len())
		for _, item := range t.Items() {
			key, ok := starlark.AsString(item[0])
			if !ok {
				key = item[0].String()
			}
			out[key] = toGo(item[1])
		}
		return out
	case *argumentValue:
		return t.arg.Clone()
	case *workspaceObjectValue:
		return domain.WorkspaceObject{Type: t.obj.Type, Fields: slices.Clone(t.obj.Fields)}
	default:
		return v.String()
	}
}

func sequenceToGo(seq starlark.Indexable) any {
	n := seq.Len()
	strs := make([]string, 0, n)
	for i := range n {
		s, ok := seq.Index(i).(starlark.String)
		if !ok {
			break
		}
		strs = append(strs, string(s))
	}
	if len(strs) == n {
		return strs
	}

	out := make([]any, n)
	for i := range n {
		out[i] = toGo(seq.Index(i))
	}
	return out
}

// fromGo converts a Go value into a Starlark value.
func fromGo(v any) starlark.Value {
	switch t := v.(type) {
	case nil:
		return starlark.None
	case starlark.Value:
		return t
	case bool:
		return starlark.Bool(t)
	case int:
		return starlark.MakeInt(t)
	case int64:
		return starlark.MakeInt64(t)
	case float64:
		return starlark.Float(t)
	case string:
		return starlark.String(t)
	case []string:
		elems := make([]starlark.Value, len(t))
		for i, s := range t {
			elems[i] = starlark.String(s)
		}
		return starlark.NewList(elems)
	case []any:
		elems := make([]starlark.Value, len(t))
		for i, e := range t {
			elems[i] = fromGo(e)
		}
		return starlark.NewList(elems)
	case map[string]string:
		d := starlark.NewDict(len(t))
		for _, k := range slices.Sorted(maps.Keys(t)) {
			_ = d.SetKey(starlark.String(k), starlark.String(t[k]))
		}
		return d
	case map[string]any:
		d := starlark.NewDict(len(t))
		for _, k := range slices.Sorted(maps.Keys(t)) {
			_ = d.SetKey(starlark.String(k), fromGo(t[k]))
		}
		return d
	default:
		return starlark.String(fmt.Sprint(v))
	}
}

func toStrings(list *starlark.List) []string {
	if list == nil {
		return nil
	}
	out := make([]string, 0, list.Len())
	for i := range list.Len() {
		v := list.Index(i)
		if s, ok := starlark.AsString(v); ok {
			out = append(out, s)
		} else {
			out = append(out, v.String())
		}
	}
	return out
}

func toArguments(v starlark.Value) ([]domain.Argument, error) {
	if v == starlark.None {
		return nil, nil
	}
	seq, ok := v.(starlark.Indexable)
	if !ok {
		return nil, fmt.Errorf("arguments must return a list, got %s", v.Type())
	}
	out := make([]domain.Argument, 0, seq.Len())
	for i := range seq.Len() {
		a, ok := seq.Index(i).(*argumentValue)
		if !ok {
			return nil, fmt.Errorf("argument %d must be created with argument(), got %s", i, seq.Index(i).Type())
		}
		out = append(out, a.arg.Clone())
	}
	return out, nil
}

func toWorkspaceObjects(v starlark.Value) ([]domain.WorkspaceObject, error) {
	if v == starlark.None {
		return nil, nil
	}
	seq, ok := v.(starlark.Indexable)
	if !ok {
		return nil, fmt.Errorf("output_requests must return a list, got %s", v.Type())
	}
	out := make([]domain.WorkspaceObject, 0, seq.Len())
	for i := range seq.Len() {
		switch t := seq.Index(i).(type) {
		case *workspaceObjectValue:
			out = append(out, domain.WorkspaceObject{Type: t.obj.Type, Fields: slices.Clone(t.obj.Fields)})
		case starlark.String:
			out = append(out, domain.WorkspaceObject{Type: string(t)})
		default:
			return nil, fmt.Errorf("output request %d must be a workspace_object, got %s", i, t.Type())
		}
	}
	return out, nil
}

func argumentsDict(args domain.ArgumentMap) *starlark.Dict {
	return fromGo(args.Values()).(*starlark.Dict)
}
