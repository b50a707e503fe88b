// Package shell runs backend commands as plain subprocesses. The child
// writes to the streams it is given, so cmake's own progress output and
// compiler diagnostics reach the user exactly as the tools emit them.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/gracelang/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

var _ ports.Executor = (*Executor)(nil)

// Run executes argv synchronously in dir. The returned status is the
// child's exit code; a nonzero exit is not an error. The error is
// non-nil only when the command could not be started at all, in which
// case the status is -1.
func (e *Executor) Run(ctx context.Context, argv []string, dir string, stdout, stderr io.Writer) (int, error) {
	if len(argv) == 0 {
		return -1, zerr.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.With(zerr.Wrap(err, "failed to start command"), "command", argv[0])
	}

	return 0, nil
}
