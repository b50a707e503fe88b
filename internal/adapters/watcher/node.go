package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"github.com/gracelang/mason/internal/core/ports"
)

// NodeID is the unique identifier for the file watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Watcher, error) {
			return NewWatcher()
		},
	})
}

// DefaultDebounceWindow is how long the watch loop waits for the file
// system to settle before kicking off a rebuild. Editors tend to emit
// several events per save, and a rebuild is expensive enough that
// coalescing generously beats reacting instantly.
const DefaultDebounceWindow = 500 * time.Millisecond
