package idf

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/osw/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the workspace loader Graft node.
	LoaderNodeID graft.ID = "adapter.idf.loader"
	// TranslatorNodeID is the unique identifier for the translator Graft node.
	TranslatorNodeID graft.ID = "adapter.idf.translator"
)

func init() {
	graft.Register(graft.Node[ports.WorkspaceLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorkspaceLoader, error) {
			return NewLoader()
		},
	})

	graft.Register(graft.Node[ports.Translator]{
		ID:        TranslatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Translator, error) {
			return NewTranslator(), nil
		},
	})
}
