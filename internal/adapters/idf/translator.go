package idf

import (
	"context"
	"maps"
	"slices"

	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/core/ports"
)

var _ ports.Translator = (*Translator)(nil)

// Translator maps every model object onto one workspace object whose fields
// are the object name followed by its attribute values in key order.
type Translator struct{}

// NewTranslator creates a new Translator.
func NewTranslator() *Translator {
	return &Translator{}
}

// TranslateModel converts model into a workspace led by a Version object.
func (t *Translator) TranslateModel(ctx context.Context, model *domain.Model) (*domain.Workspace, error) {
	ws := domain.NewWorkspace()
	ws.AddObject(domain.WorkspaceObject{Type: "Version", Fields: []string{domain.WorkspaceVersion}})
	if model == nil {
		return ws, nil
	}
	for _, obj := range model.Objects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fields := []string{obj.Name}
		for _, key := range slices.Sorted(maps.Keys(obj.Attributes)) {
			fields = append(fields, obj.Attributes[key])
		}
		ws.AddObject(domain.WorkspaceObject{Type: obj.Type, Fields: fields})
	}
	return ws, nil
}
