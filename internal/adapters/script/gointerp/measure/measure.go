// Package measure is the API interpreted Go measure scripts build against.
// Scripts import it as "osw/measure" and register exactly one measure:
//
//	var _ = measure.Register("AddOverhang", measure.ModelMeasure{
//		Name: "Add Overhang",
//		Run: func(model *measure.Model, runner *measure.Runner, args measure.Arguments) bool {
//			model.AddObject("ShadingSurface", "overhang")
//			return true
//		},
//	})
package measure

import (
	"slices"
	"sync"

	"go.trai.ch/osw/internal/core/domain"
)

// ModelMeasure defines a measure operating on the building model.
type ModelMeasure struct {
	Name               string
	Description        string
	Taxonomy           string
	ModelerDescription string
	Outputs            []domain.OutputAttribute
	Arguments          func(model *domain.Model) []domain.Argument
	Run                func(model *domain.Model, runner *domain.Recorder, args domain.ArgumentMap) bool
}

// EnergyPlusMeasure defines a measure operating on the translated workspace.
type EnergyPlusMeasure struct {
	Name               string
	Description        string
	Taxonomy           string
	ModelerDescription string
	Outputs            []domain.OutputAttribute
	Arguments          func(workspace *domain.Workspace) []domain.Argument
	Run                func(workspace *domain.Workspace, runner *domain.Recorder, args domain.ArgumentMap) bool
}

// ReportingMeasure defines a measure running after simulation. Older scripts
// declare LegacyArguments, which receives no model, instead of Arguments.
type ReportingMeasure struct {
	Name               string
	Description        string
	Taxonomy           string
	ModelerDescription string
	Outputs            []domain.OutputAttribute
	Arguments          func(model *domain.Model) []domain.Argument
	LegacyArguments    func() []domain.Argument
	Run                func(runner *domain.Recorder, args domain.ArgumentMap) bool
	OutputRequests     func(runner *domain.Recorder, args domain.ArgumentMap) []domain.WorkspaceObject
}

// Registry records the measure classes a script registers.
type Registry struct {
	mu      sync.Mutex
	classes []string
	defs    map[string]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]any)}
}

// Register records def under className. It returns true so scripts can call
// it from a package-level variable declaration.
func (r *Registry) Register(className string, def any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.defs[className]; !ok {
		r.classes = append(r.classes, className)
	}
	r.defs[className] = def
	return true
}

// Classes returns the registered class names in registration order.
func (r *Registry) Classes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.classes)
}

// Lookup returns the definition registered under className.
func (r *Registry) Lookup(className string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	def, ok := r.defs[className]
	return def, ok
}
