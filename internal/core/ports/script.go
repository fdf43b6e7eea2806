package ports

import (
	"context"

	"go.trai.ch/osw/internal/core/domain"
)

// Handle refers to a value held by a script engine.
type Handle uint64

// Snippets are the language-specific payloads used to introspect a loaded script.
type Snippets struct {
	// Prelude is executed once after a script is loaded. It may be empty.
	Prelude string
	// ListMeasureClasses evaluates to a list of the measure class names the script defines.
	ListMeasureClasses string
}

// ScriptEngine is an embedded interpreter for one measure language.
//
//go:generate mockgen -source=script.go -destination=mocks/mock_script.go -package=mocks
type ScriptEngine interface {
	// Language returns the language this engine interprets.
	Language() domain.Language
	// LoadScript interprets the script at path, replacing any previously loaded script.
	LoadScript(ctx context.Context, path string) error
	// Exec runs code in the scope of the loaded script.
	Exec(ctx context.Context, code string) error
	// Eval evaluates an expression and returns a handle to its value.
	Eval(ctx context.Context, code string) (Handle, error)
	// Value returns the native value behind a handle.
	Value(h Handle) (any, error)
	// LoadMeasure instantiates the named measure class of the script at path.
	LoadMeasure(ctx context.Context, path, className string) (Handle, error)
	// NumberOfArguments reports how many parameters method of the value behind h accepts.
	NumberOfArguments(h Handle, method string) (int, error)
	// Snippets returns the introspection payloads for this language.
	Snippets() Snippets
}

// EngineRegistry selects the script engine for a measure language.
type EngineRegistry interface {
	// Engine returns the engine for lang, or domain.ErrUnsupportedLanguage.
	Engine(lang domain.Language) (ScriptEngine, error)
}
