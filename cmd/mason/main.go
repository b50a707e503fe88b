// Package main is the entry point for the mason build orchestrator.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grindlemire/graft"

	"github.com/gracelang/mason/cmd/mason/commands"
	"github.com/gracelang/mason/internal/app"
	"github.com/gracelang/mason/internal/core/domain"
	_ "github.com/gracelang/mason/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, func() {}, err
		}
		cleanup := func() {
			// Flush buffered spans; a hung exporter must not wedge exit.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = c.Tracer.Shutdown(shutdownCtx)
		}
		return c, cleanup, nil
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available when initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// Phase and example failures were already rendered on the
		// console as they happened; repeating them here adds noise.
		if errors.Is(err, domain.ErrBuildFailed) || errors.Is(err, domain.ErrExamplesFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
