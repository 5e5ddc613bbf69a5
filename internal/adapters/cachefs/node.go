package cachefs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wodl/internal/adapters/logger"
	"go.trai.ch/wodl/internal/core/ports"
)

// NodeID is the unique identifier for the entity cache store Graft node.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})
}
