package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/osw/internal/adapters/logger"
	"go.trai.ch/osw/internal/core/ports"
)

// NodeID is the unique identifier for the workflow loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
