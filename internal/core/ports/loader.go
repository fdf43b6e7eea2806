package ports

import (
	"context"

	"go.trai.ch/osw/internal/core/domain"
)

// ValidityLevel is the strictness a workspace is checked against.
type ValidityLevel int

const (
	// ValidityNone accepts any parseable workspace.
	ValidityNone ValidityLevel = iota
	// ValidityDraft requires well-formed objects.
	ValidityDraft
	// ValidityFinal additionally requires the objects a simulation cannot run without.
	ValidityFinal
)

//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks

// ModelLoader reads building models.
type ModelLoader interface {
	// LoadModel parses the model at path.
	LoadModel(path string) (*domain.Model, error)
	// SaveModel writes the model to path.
	SaveModel(path string, model *domain.Model) error
}

// WorkspaceLoader reads simulation-input workspaces.
type WorkspaceLoader interface {
	// LoadWorkspace parses the workspace at path against the named schema.
	LoadWorkspace(path, schema string) (*domain.Workspace, error)
	// IsValid checks the workspace at the given level.
	IsValid(ws *domain.Workspace, level ValidityLevel) error
	// SaveWorkspace writes the workspace to path.
	SaveWorkspace(path string, ws *domain.Workspace) error
}

// Translator converts a model into its simulation-input form.
type Translator interface {
	TranslateModel(ctx context.Context, model *domain.Model) (*domain.Workspace, error)
}

// WorkflowLoader reads workflow files.
type WorkflowLoader interface {
	// Load reads and validates the workflow at path.
	Load(path string) (*domain.Workflow, error)
}
