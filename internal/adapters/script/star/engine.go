// Package star interprets measure scripts written in Starlark.
//
// A script binds exactly one measure to a global name:
//
//	AddOverhang = model_measure(
//	    name = "Add Overhang",
//	    arguments = lambda model: [argument("depth", "Double", default = 0.5)],
//	    run = _run,
//	)
package star

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScriptEngine = (*Engine)(nil)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Engine is a ports.ScriptEngine backed by the Starlark interpreter.
type Engine struct {
	mu      sync.Mutex
	callMu  sync.Mutex
	globals starlark.StringDict
	path    string
	values  map[ports.Handle]any
	next    ports.Handle
}

// NewEngine creates an engine with no script loaded.
func NewEngine() *Engine {
	return &Engine{values: make(map[ports.Handle]any)}
}

// Language implements ports.ScriptEngine.
func (e *Engine) Language() domain.Language {
	return domain.LanguageStarlark
}

// Snippets implements ports.ScriptEngine.
func (e *Engine) Snippets() ports.Snippets {
	return ports.Snippets{ListMeasureClasses: "measure_classes()"}
}

// LoadScript implements ports.ScriptEngine.
func (e *Engine) LoadScript(ctx context.Context, path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.load(ctx, path)
}

func (e *Engine) load(ctx context.Context, path string) error {
	thread, done := newThread(ctx, path)
	defer done()

	globals, err := starlark.ExecFileOptions(fileOptions, thread, path, nil, e.builtins())
	if err != nil {
		return evalError(err, path)
	}

	e.globals = globals
	e.path = path
	clear(e.values)
	return nil
}

// Exec implements ports.ScriptEngine.
func (e *Engine) Exec(ctx context.Context, code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.globals == nil {
		return zerr.Wrap(domain.ErrScriptEvaluation, "no script loaded")
	}
	if code == "" {
		return nil
	}

	thread, done := newThread(ctx, e.path)
	defer done()

	globals, err := starlark.ExecFileOptions(fileOptions, thread, "<exec>", code, e.env())
	if err != nil {
		return evalError(err, e.path)
	}
	maps.Copy(e.globals, globals)
	return nil
}

// Eval implements ports.ScriptEngine.
func (e *Engine) Eval(ctx context.Context, code string) (ports.Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.globals == nil {
		return 0, zerr.Wrap(domain.ErrScriptEvaluation, "no script loaded")
	}

	thread, done := newThread(ctx, e.path)
	defer done()

	v, err := starlark.EvalOptions(fileOptions, thread, "<eval>", code, e.env())
	if err != nil {
		return 0, evalError(err, e.path)
	}
	return e.store(toGo(v)), nil
}

// Value implements ports.ScriptEngine.
func (e *Engine) Value(h ports.Handle) (any, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.values[h]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrScriptEvaluation, "unknown handle"), "handle", uint64(h))
	}
	return v, nil
}

// LoadMeasure implements ports.ScriptEngine.
func (e *Engine) LoadMeasure(ctx context.Context, path, className string) (ports.Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.globals == nil || e.path != path {
		if err := e.load(ctx, path); err != nil {
			return 0, err
		}
	}

	v, ok := e.globals[className]
	if !ok {
		return 0, zerr.With(zerr.Wrap(domain.ErrScriptEvaluation, "measure class is not defined"), "class", className)
	}
	def, ok := v.(*measureDef)
	if !ok {
		return e.store(toGo(v)), nil
	}
	return e.store(e.wrap(className, def)), nil
}

// NumberOfArguments implements ports.ScriptEngine.
func (e *Engine) NumberOfArguments(h ports.Handle, method string) (int, error) {
	v, err := e.Value(h)
	if err != nil {
		return 0, err
	}
	m, ok := v.(interface{ definition() *measureDef })
	if !ok {
		return 0, zerr.With(zerr.Wrap(domain.ErrIncompatibleArity, "value is not a measure"), "method", method)
	}
	n, ok := m.definition().arity(method)
	if !ok {
		return 0, zerr.With(zerr.Wrap(domain.ErrIncompatibleArity, "unknown method"), "method", method)
	}
	return n, nil
}

func (e *Engine) env() starlark.StringDict {
	env := e.builtins()
	maps.Copy(env, e.globals)
	return env
}

func (e *Engine) store(v any) ports.Handle {
	e.next++
	e.values[e.next] = v
	return e.next
}

// call runs fn on a fresh thread. Calls into one engine never overlap.
func (e *Engine) call(ctx context.Context, className, method string, fn starlark.Callable, args ...starlark.Value) (starlark.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.callMu.Lock()
	defer e.callMu.Unlock()

	thread, done := newThread(ctx, className)
	defer done()

	v, err := starlark.Call(thread, fn, starlark.Tuple(args), nil)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrScriptEvaluation, err.Error()), "class", className), "method", method)
	}
	return v, nil
}

// newThread returns a thread that is cancelled when ctx is done. The returned
// func releases the cancellation hook.
func newThread(ctx context.Context, name string) (*starlark.Thread, func() bool) {
	thread := &starlark.Thread{
		Name:  name,
		Print: func(*starlark.Thread, string) {},
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(fmt.Sprint(context.Cause(ctx)))
	})
	return thread, stop
}

func evalError(err error, path string) error {
	return zerr.With(zerr.Wrap(domain.ErrScriptEvaluation, err.Error()), "script", path)
}
