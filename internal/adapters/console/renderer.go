// Package console provides a synchronous line renderer for build
// progress. Phase banners and outcomes go to stderr; the backend's own
// output is not routed through here, it reaches the user directly.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gracelang/mason/internal/core/domain"
	"github.com/gracelang/mason/internal/core/ports"
	"github.com/gracelang/mason/internal/ui/output"
	"github.com/gracelang/mason/internal/ui/style"
	"github.com/muesli/termenv"
)

// Renderer implements ports.Renderer with chronological line output.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu     sync.Mutex
	phases map[string]*phaseState // spanID -> phase state
}

type phaseState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a new Renderer. Nil writers default to the
// process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewANSI(stderr),
		phases: make(map[string]*phaseState),
	}
}

var _ ports.Renderer = (*Renderer)(nil)

// OnPhaseStart prints the phase banner and the command about to run.
func (r *Renderer) OnPhaseStart(spanID, name, command string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.phases[spanID] = &phaseState{
		name:      name,
		startTime: startTime,
	}

	dot := r.output.String(style.Dot).Foreground(termenv.ANSICyan).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s\n", dot, name)
	_, _ = fmt.Fprintf(r.stderr, "%s\n", r.output.String("$ "+command).Faint().String())
}

// OnPhaseComplete prints the phase outcome. Span IDs that never started
// here (umbrella spans) are ignored.
func (r *Renderer) OnPhaseComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	phase, ok := r.phases[spanID]
	if !ok {
		return
	}
	delete(r.phases, spanID)

	duration := endTime.Sub(phase.startTime)
	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s failed after %v: %v\n", symbol, phase.name, duration, err)
		return
	}

	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s completed in %v\n", symbol, phase.name, duration)
}

// Plan prints the planned commands without executing them.
func (r *Renderer) Plan(commands []domain.PhaseCommand) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stdout, "Planning to run %d phase(s):\n", len(commands))
	for _, cmd := range commands {
		_, _ = fmt.Fprintf(r.stdout, "  %s %s $ %s\n", style.Circle, cmd.Title(), cmd.String())
	}
}

// InstallGuidance prints the post-install instructions for the platform.
func (r *Renderer) InstallGuidance(profile domain.Profile, _ domain.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stdout, "\n=== INSTALLATION SUCCESSFUL ===\n\n")
	_, _ = fmt.Fprintln(r.stdout, strings.Join(profile.InstallNotes(), "\n"))
}

// Summary prints the per-phase outcome table after a build.
func (r *Renderer) Summary(results []domain.PhaseResult, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(results) == 0 {
		return
	}

	succeeded := 0
	_, _ = fmt.Fprintln(r.stderr, "Build summary:")
	for _, result := range results {
		switch {
		case result.Err != nil:
			symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
			_, _ = fmt.Fprintf(r.stderr, "  %s %s (%v, %v)\n", symbol, result.Command.Title(), result.Duration, result.Err)
		case result.ExitStatus != 0:
			symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
			_, _ = fmt.Fprintf(r.stderr, "  %s %s (%v, exit %d)\n", symbol, result.Command.Title(), result.Duration, result.ExitStatus)
		default:
			symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
			_, _ = fmt.Fprintf(r.stderr, "  %s %s (%v)\n", symbol, result.Command.Title(), result.Duration)
			succeeded++
		}
	}

	failed := len(results) - succeeded
	if failed > 0 {
		_, _ = fmt.Fprintf(r.stderr, "%d phase(s) succeeded, %d failed in %v\n", succeeded, failed, elapsed)
		return
	}
	_, _ = fmt.Fprintf(r.stderr, "%d phase(s) succeeded in %v\n", succeeded, elapsed)
}
