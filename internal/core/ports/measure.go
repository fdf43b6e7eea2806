package ports

import (
	"context"

	"go.trai.ch/osw/internal/core/domain"
)

// Measure is the part every measure class exposes regardless of its type.
type Measure interface {
	ClassName() string
	Name() string
	Description() string
	Taxonomy() string
	ModelerDescription() string
	Outputs(ctx context.Context) ([]domain.OutputAttribute, error)
}

// ModelMeasure operates on the building model.
type ModelMeasure interface {
	Measure
	Arguments(ctx context.Context, model *domain.Model) ([]domain.Argument, error)
	Run(ctx context.Context, model *domain.Model, runner *domain.Recorder, args domain.ArgumentMap) (bool, error)
}

// EnergyPlusMeasure operates on the translated workspace.
type EnergyPlusMeasure interface {
	Measure
	Arguments(ctx context.Context, workspace *domain.Workspace) ([]domain.Argument, error)
	Run(ctx context.Context, workspace *domain.Workspace, runner *domain.Recorder, args domain.ArgumentMap) (bool, error)
}

// ReportingMeasure runs after simulation. It can request extra simulation outputs
// before the simulation runs.
type ReportingMeasure interface {
	Measure
	Arguments(ctx context.Context, model *domain.Model) ([]domain.Argument, error)
	Run(ctx context.Context, runner *domain.Recorder, args domain.ArgumentMap) (bool, error)
	OutputRequests(ctx context.Context, runner *domain.Recorder, args domain.ArgumentMap) ([]domain.WorkspaceObject, error)
}

// LegacyReportingMeasure is a reporting measure whose arguments method takes no model.
type LegacyReportingMeasure interface {
	Measure
	Arguments(ctx context.Context) ([]domain.Argument, error)
	Run(ctx context.Context, runner *domain.Recorder, args domain.ArgumentMap) (bool, error)
	OutputRequests(ctx context.Context, runner *domain.Recorder, args domain.ArgumentMap) ([]domain.WorkspaceObject, error)
}
