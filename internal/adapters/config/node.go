package config

import (
	"context"

	"github.com/gracelang/mason/internal/adapters/logger"
	"github.com/gracelang/mason/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the settings loader Graft node.
const NodeID graft.ID = "adapter.settings_loader"

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(NewOSFS(), log), nil
		},
	})
}
