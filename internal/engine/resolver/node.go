package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/osw/internal/adapters/script" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/osw/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{script.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			engines, err := graft.Dep[ports.EngineRegistry](ctx)
			if err != nil {
				return nil, err
			}
			return New(engines), nil
		},
	})
}
