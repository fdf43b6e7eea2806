// Package script maps measure languages to their script engines.
package script

import (
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EngineRegistry = (*Registry)(nil)

// Registry holds one engine per language.
type Registry struct {
	engines map[domain.Language]ports.ScriptEngine
}

// NewRegistry registers engines under the language each reports.
func NewRegistry(engines ...ports.ScriptEngine) *Registry {
	r := &Registry{engines: make(map[domain.Language]ports.ScriptEngine, len(engines))}
	for _, e := range engines {
		r.engines[e.Language()] = e
	}
	return r
}

// Engine implements ports.EngineRegistry.
func (r *Registry) Engine(lang domain.Language) (ports.ScriptEngine, error) {
	e, ok := r.engines[lang]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedLanguage, "no script engine registered"), "language", string(lang))
	}
	return e, nil
}
