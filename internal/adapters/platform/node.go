package platform

import (
	"context"

	"github.com/gracelang/mason/internal/adapters/logger"
	"github.com/gracelang/mason/internal/core/domain"
	"github.com/gracelang/mason/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the platform profile Graft node.
const NodeID graft.ID = "adapter.platform"

func init() {
	graft.Register(graft.Node[domain.Profile]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (domain.Profile, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return domain.Profile{}, err
			}
			return Detect(log), nil
		},
	})
}
