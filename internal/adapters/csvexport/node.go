package csvexport

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wodl/internal/core/ports"
)

// NodeID is the unique identifier for the CSV sink Graft node.
const NodeID graft.ID = "adapter.record_sink"

func init() {
	graft.Register(graft.Node[ports.RecordSink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RecordSink, error) {
			return NewSink(), nil
		},
	})
}
