package workflow

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/osw/internal/adapters/results"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/osw/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/osw/internal/engine/measures"
)

// NodeID is the unique identifier for the workflow runner Graft node.
const NodeID graft.ID = "engine.workflow"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			measures.NodeID,
			results.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			manager, err := graft.Dep[*measures.Manager](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ResultStore](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(manager, store, tracer), nil
		},
	})
}
