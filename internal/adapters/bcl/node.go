package bcl

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/osw/internal/adapters/fs"
	"go.trai.ch/osw/internal/core/ports"
)

// NodeID is the unique identifier for the measure loader Graft node.
const NodeID graft.ID = "adapter.bcl"

func init() {
	graft.Register(graft.Node[ports.MeasureLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.MeasureLoader, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(fs.NewHasher(walker), walker), nil
		},
	})
}
