package upkeep

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wodl/internal/core/ports"
)

// NodeID is the unique identifier for the upstream client Graft node.
const NodeID graft.ID = "adapter.upstream"

func init() {
	graft.Register(graft.Node[ports.Upstream]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Upstream, error) {
			return NewClient(), nil
		},
	})
}
