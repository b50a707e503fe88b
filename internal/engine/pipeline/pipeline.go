// Package pipeline plans backend invocations for a build request and
// runs them strictly in sequence.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"

	"github.com/gracelang/mason/internal/core/domain"
	"github.com/gracelang/mason/internal/core/ports"
)

// Pipeline executes planned phase commands one at a time. Successive
// phases and successive configurations share one mutable build
// directory, so nothing here runs concurrently.
type Pipeline struct {
	executor ports.Executor
	tracer   ports.Tracer
	renderer ports.Renderer
	logger   ports.Logger
	profile  domain.Profile

	// Child process streams. The backend's native log reaches the user
	// untouched.
	stdout io.Writer
	stderr io.Writer
}

// NewPipeline creates a pipeline running commands through the given
// executor, with phase lifecycle reported via tracer spans.
func NewPipeline(
	executor ports.Executor,
	tracer ports.Tracer,
	renderer ports.Renderer,
	log ports.Logger,
	profile domain.Profile,
) *Pipeline {
	return &Pipeline{
		executor: executor,
		tracer:   tracer,
		renderer: renderer,
		logger:   log,
		profile:  profile,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// Plan returns the full command sequence the request would run, without
// executing anything.
func (p *Pipeline) Plan(settings *domain.Settings, req domain.BuildRequest) []domain.PhaseCommand {
	return Plan(req, p.profile, settings)
}

// Run executes the request configuration by configuration. A failed
// Generate or Build is reported and execution continues: remaining
// phases still run except Install, which is skipped for a configuration
// whose earlier phases failed. The aggregate failure is returned after
// the summary so every configuration gets its chance.
func (p *Pipeline) Run(ctx context.Context, settings *domain.Settings, req domain.BuildRequest) error {
	start := time.Now()

	if err := p.ensureBuildDir(settings); err != nil {
		return err
	}

	var results []domain.PhaseResult
	for _, cfg := range req.Configurations() {
		if ctx.Err() != nil {
			break
		}
		results = append(results, p.runConfiguration(ctx, settings, req, cfg)...)
	}

	p.renderer.Summary(results, time.Since(start))

	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "build interrupted")
	}

	failed := 0
	for _, result := range results {
		if result.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return zerr.With(zerr.With(domain.ErrBuildFailed,
			"failed_phases", failed),
			"total_phases", len(results))
	}

	return nil
}

// ensureBuildDir creates the shared build directory if it is absent.
// Relative paths anchor at the settings root, mirroring how the
// commands themselves run.
func (p *Pipeline) ensureBuildDir(settings *domain.Settings) error {
	dir := settings.BuildDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(settings.Root, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildDirCreateFailed.Error()), "dir", dir)
	}
	return nil
}

func (p *Pipeline) runConfiguration(ctx context.Context, settings *domain.Settings, req domain.BuildRequest, cfg domain.Config) []domain.PhaseResult {
	ctx, span := p.tracer.Start(ctx, fmt.Sprintf("configuration %s", cfg))
	defer span.End()

	commands := Commands(req, cfg, p.profile, settings)
	results := make([]domain.PhaseResult, 0, len(commands))
	failed := false

	for _, cmd := range commands {
		if ctx.Err() != nil {
			break
		}

		// An install over unverified artifacts is never attempted. The
		// skip is visible but carries no success output.
		if cmd.Phase == domain.PhaseInstall && failed {
			p.logger.Warn(fmt.Sprintf("skipping %s: an earlier phase of this configuration failed", cmd.Title()))
			continue
		}

		result := p.runPhase(ctx, cmd)
		results = append(results, result)

		if result.Failed() {
			failed = true
			continue
		}

		if cmd.Phase == domain.PhaseInstall {
			p.renderer.InstallGuidance(p.profile, cfg)
		}
	}

	if failed {
		span.SetAttribute("failed", true)
	}

	return results
}

func (p *Pipeline) runPhase(ctx context.Context, cmd domain.PhaseCommand) domain.PhaseResult {
	ctx, span := p.tracer.Start(ctx, cmd.Title(),
		ports.WithAttribute(ports.CommandAttribute, cmd.String()))
	defer span.End()

	start := time.Now()
	status, err := p.executor.Run(ctx, cmd.Argv, cmd.Dir, p.stdout, p.stderr)
	result := domain.PhaseResult{
		Command:    cmd,
		ExitStatus: status,
		Err:        err,
		Duration:   time.Since(start),
	}

	span.SetAttribute("exit_status", status)
	if result.Failed() {
		span.RecordError(phaseError(result))
	}

	return result
}

// phaseError describes a failed phase with its position in the plan.
func phaseError(result domain.PhaseResult) error {
	var err error
	if result.Err != nil {
		err = zerr.Wrap(result.Err, domain.ErrPhaseFailed.Error())
	} else {
		err = zerr.With(domain.ErrPhaseFailed, "exit_status", result.ExitStatus)
	}
	err = zerr.With(err, "phase", result.Command.Phase.String())
	return zerr.With(err, "configuration", string(result.Command.Config))
}
