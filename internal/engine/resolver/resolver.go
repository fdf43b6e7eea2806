// Package resolver turns measure scripts into typed, runnable measures.
package resolver

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver loads measure scripts through the engine registered for their language.
type Resolver struct {
	engines ports.EngineRegistry
}

// New creates a Resolver.
func New(engines ports.EngineRegistry) *Resolver {
	return &Resolver{engines: engines}
}

// GetAs recovers the native value behind h as a T.
func GetAs[T any](engine ports.ScriptEngine, h ports.Handle) (T, error) {
	var zero T
	v, err := engine.Value(h)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, zerr.With(
			zerr.Wrap(domain.ErrScriptEvaluation, fmt.Sprintf("value has type %T, want %T", v, zero)),
			"handle", uint64(h),
		)
	}
	return out, nil
}

// Load evaluates the measure's script and returns a fresh instance of its
// single measure class.
func (r *Resolver) Load(ctx context.Context, desc ports.MeasureDescriptor) (*Loaded, error) {
	name := measureName(desc)
	lang := desc.Language()

	engine, err := r.engines.Engine(lang)
	if err != nil {
		return nil, zerr.With(err, "measure", name)
	}

	script, ok := desc.PrimaryScriptPath()
	if !ok {
		return nil, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrMissingScript, fmt.Sprintf("measure %q has no %s script", name, lang)),
			"measure", name), "language", string(lang))
	}

	className, err := discoverClass(ctx, engine, script)
	if err != nil {
		return nil, zerr.With(err, "measure", name)
	}

	h, err := engine.LoadMeasure(ctx, script, className)
	if err != nil {
		return nil, zerr.With(err, "measure", name)
	}

	loaded, err := classify(engine, h, className)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "measure", name), "class", className)
	}
	loaded.Language = lang
	loaded.Directory = desc.Directory()
	return loaded, nil
}

// Resolve loads the measure, computes its info against empty domain objects,
// and writes the info back into the measure's metadata.
func (r *Resolver) Resolve(ctx context.Context, desc ports.MeasureDescriptor) (*domain.MeasureInfo, error) {
	loaded, err := r.Load(ctx, desc)
	if err != nil {
		return nil, err
	}

	info, err := loaded.Info(ctx, nil, nil)
	if err != nil {
		return nil, zerr.With(err, "measure", measureName(desc))
	}

	if err := desc.UpdateFromInfo(info); err != nil {
		return nil, err
	}
	if err := desc.Save(); err != nil {
		return nil, err
	}
	return info, nil
}

func discoverClass(ctx context.Context, engine ports.ScriptEngine, script string) (string, error) {
	if err := engine.LoadScript(ctx, script); err != nil {
		return "", err
	}

	snippets := engine.Snippets()
	if snippets.Prelude != "" {
		if err := engine.Exec(ctx, snippets.Prelude); err != nil {
			return "", err
		}
	}

	h, err := engine.Eval(ctx, snippets.ListMeasureClasses)
	if err != nil {
		return "", err
	}
	classes, err := GetAs[[]string](engine, h)
	if err != nil {
		return "", err
	}

	if len(classes) != 1 {
		return "", zerr.With(zerr.With(
			zerr.Wrap(domain.ErrMeasureClassCount, fmt.Sprintf("found %d measure classes", len(classes))),
			"classes", classes), "script", script)
	}
	return classes[0], nil
}

func measureName(desc ports.MeasureDescriptor) string {
	if name := desc.Metadata().Name; name != "" {
		return name
	}
	return filepath.Base(desc.Directory())
}
