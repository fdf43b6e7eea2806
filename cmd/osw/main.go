// Package main is the entry point for the osw workflow runner.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/osw/cmd/osw/commands"
	"go.trai.ch/osw/internal/adapters/telemetry"
	"go.trai.ch/osw/internal/app"
	"go.trai.ch/osw/internal/core/domain"
	_ "go.trai.ch/osw/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// Step spans are reported through the logger as they finish.
	tp := telemetry.NewProvider(telemetry.NewLogBridge(components.Logger, "step "))
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()

	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// Failed steps are already listed in the run summary.
		if errors.Is(err, domain.ErrRunFailed) && domain.IsExecutionError(err) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
