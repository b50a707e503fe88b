// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/gracelang/mason/internal/adapters/config"
	_ "github.com/gracelang/mason/internal/adapters/console"
	_ "github.com/gracelang/mason/internal/adapters/logger"
	_ "github.com/gracelang/mason/internal/adapters/platform"
	_ "github.com/gracelang/mason/internal/adapters/shell"
	_ "github.com/gracelang/mason/internal/adapters/telemetry"
	_ "github.com/gracelang/mason/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/gracelang/mason/internal/app"
)
