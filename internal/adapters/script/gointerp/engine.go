// Package gointerp interprets measure scripts written in Go.
package gointerp

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.trai.ch/osw/internal/adapters/script/gointerp/measure"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScriptEngine = (*Engine)(nil)

// Engine is a ports.ScriptEngine backed by the yaegi interpreter. Every
// LoadScript starts a fresh interpreter with its own registry.
type Engine struct {
	mu       sync.Mutex
	interp   *interp.Interpreter
	registry *measure.Registry
	path     string
	values   map[ports.Handle]any
	next     ports.Handle
}

// NewEngine creates an engine with no script loaded.
func NewEngine() *Engine {
	return &Engine{values: make(map[ports.Handle]any)}
}

// Language implements ports.ScriptEngine.
func (e *Engine) Language() domain.Language {
	return domain.LanguageGo
}

// Snippets implements ports.ScriptEngine.
func (e *Engine) Snippets() ports.Snippets {
	return ports.Snippets{
		Prelude:            `import "osw/introspect"`,
		ListMeasureClasses: "introspect.Classes()",
	}
}

// LoadScript implements ports.ScriptEngine.
func (e *Engine) LoadScript(ctx context.Context, path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.load(ctx, path)
}

func (e *Engine) load(ctx context.Context, path string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	reg := measure.NewRegistry()
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return evalError(err, path)
	}
	if err := i.Use(symbols(reg)); err != nil {
		return evalError(err, path)
	}

	defer func() {
		if r := recover(); r != nil {
			err = evalError(fmt.Errorf("panic: %v", r), path)
		}
	}()
	if _, err := i.EvalPath(path); err != nil {
		return evalError(err, path)
	}

	e.interp = i
	e.registry = reg
	e.path = path
	clear(e.values)
	return nil
}

// Exec implements ports.ScriptEngine.
func (e *Engine) Exec(ctx context.Context, code string) error {
	_, err := e.Eval(ctx, code)
	return err
}

// Eval implements ports.ScriptEngine.
func (e *Engine) Eval(ctx context.Context, code string) (h ports.Handle, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.interp == nil {
		return 0, zerr.Wrap(domain.ErrScriptEvaluation, "no script loaded")
	}

	defer func() {
		if r := recover(); r != nil {
			err = evalError(fmt.Errorf("panic: %v", r), e.path)
		}
	}()
	v, err := e.interp.EvalWithContext(ctx, code)
	if err != nil {
		return 0, evalError(err, e.path)
	}

	var out any
	if v.IsValid() && v.CanInterface() {
		out = v.Interface()
	}
	return e.store(out), nil
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

	if e.interp == nil || e.path != path {
		if err := e.load(ctx, path); err != nil {
			return 0, err
		}
	}

	def, ok := e.registry.Lookup(className)
	if !ok {
		return 0, zerr.With(zerr.Wrap(domain.ErrScriptEvaluation, "measure class is not registered"), "class", className)
	}

	m, err := wrap(className, def)
	if err != nil {
		return 0, err
	}
	return e.store(m), nil
}

// NumberOfArguments implements ports.ScriptEngine.
func (e *Engine) NumberOfArguments(h ports.Handle, method string) (int, error) {
	v, err := e.Value(h)
	if err != nil {
		return 0, err
	}

	if a, ok := v.(arityReporter); ok {
		if n, ok := a.arity(method); ok {
			return n, nil
		}
		return 0, zerr.With(zerr.Wrap(domain.ErrIncompatibleArity, "unknown method"), "method", method)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		return rv.Type().NumIn(), nil
	}
	if m := rv.MethodByName(method); m.IsValid() {
		return m.Type().NumIn(), nil
	}
	return 0, zerr.With(zerr.Wrap(domain.ErrIncompatibleArity, "value has no such method"), "method", method)
}

func (e *Engine) store(v any) ports.Handle {
	e.next++
	e.values[e.next] = v
	return e.next
}

func evalError(err error, path string) error {
	return zerr.With(zerr.Wrap(domain.ErrScriptEvaluation, err.Error()), "script", path)
}
