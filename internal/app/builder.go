package app

import (
	"github.com/gracelang/mason/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the
// CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger

	// Tracer is exposed so main can flush spans on shutdown.
	Tracer ports.Tracer
}
