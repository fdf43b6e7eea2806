package measures

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/osw/internal/adapters/bcl"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/osw/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/osw/internal/adapters/idf"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/osw/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/osw/internal/adapters/osm"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/osw/internal/engine/resolver"
)

// NodeID is the unique identifier for the measure manager Graft node.
const NodeID graft.ID = "engine.measures"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			osm.NodeID,
			idf.LoaderNodeID,
			idf.TranslatorNodeID,
			bcl.NodeID,
			fs.HasherNodeID,
			resolver.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			models, err := graft.Dep[ports.ModelLoader](ctx)
			if err != nil {
				return nil, err
			}

			workspaces, err := graft.Dep[ports.WorkspaceLoader](ctx)
			if err != nil {
				return nil, err
			}

			translator, err := graft.Dep[ports.Translator](ctx)
			if err != nil {
				return nil, err
			}

			measureLoader, err := graft.Dep[ports.MeasureLoader](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewManager(models, workspaces, translator, measureLoader, hasher, res, log), nil
		},
	})
}
