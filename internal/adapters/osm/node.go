package osm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/osw/internal/core/ports"
)

// NodeID is the unique identifier for the model loader Graft node.
const NodeID graft.ID = "adapter.osm"

func init() {
	graft.Register(graft.Node[ports.ModelLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModelLoader, error) {
			return NewLoader(), nil
		},
	})
}
