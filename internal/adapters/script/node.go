package script

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/osw/internal/adapters/script/gointerp"
	"go.trai.ch/osw/internal/adapters/script/star"
	"go.trai.ch/osw/internal/core/ports"
)

// NodeID is the unique identifier for the engine registry Graft node.
const NodeID graft.ID = "adapter.script"

func init() {
	graft.Register(graft.Node[ports.EngineRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EngineRegistry, error) {
			return NewRegistry(gointerp.NewEngine(), star.NewEngine()), nil
		},
	})
}
