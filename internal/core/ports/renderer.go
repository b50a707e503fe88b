package ports

import (
	"time"

	"github.com/gracelang/mason/internal/core/domain"
)

// Renderer is the abstraction for build output presentation. Phase
// lifecycle events arrive through the telemetry bridge so the same span
// stream drives both tracing and the console.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPhaseStart is called when a phase begins execution.
	// spanID: unique identifier for this phase execution
	// name: display name, e.g. "build [Release]"
	// command: the full command line being run
	OnPhaseStart(spanID, name, command string, startTime time.Time)

	// OnPhaseComplete is called when a phase finishes.
	// err: nil if the phase succeeded
	OnPhaseComplete(spanID string, endTime time.Time, err error)

	// Plan prints the planned commands without executing them.
	Plan(commands []domain.PhaseCommand)

	// InstallGuidance prints the platform's post-install instructions.
	// It is only called after an install phase succeeded.
	InstallGuidance(profile domain.Profile, cfg domain.Config)

	// Summary prints the per-phase outcome table after a build.
	Summary(results []domain.PhaseResult, elapsed time.Duration)
}
