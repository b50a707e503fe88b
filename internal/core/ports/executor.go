// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes argv synchronously in dir with the given output
	// streams and returns the exit status. The child writes to stdout
	// and stderr directly so native tool output reaches the user
	// untouched.
	//
	// A nonzero exit is not an error: the status carries it. The error
	// is non-nil only when the command could not be started, in which
	// case the status is -1.
	Run(ctx context.Context, argv []string, dir string, stdout, stderr io.Writer) (int, error)
}
