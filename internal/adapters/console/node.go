package console

import (
	"context"

	"github.com/gracelang/mason/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the console renderer Graft node.
const NodeID graft.ID = "adapter.console"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return NewRenderer(nil, nil), nil
		},
	})
}
