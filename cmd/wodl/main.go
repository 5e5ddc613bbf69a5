// Package main is the entry point for the wodl work-order downloader.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/wodl/cmd/wodl/commands"
	"go.trai.ch/wodl/internal/app"
	_ "go.trai.ch/wodl/internal/wiring"
)

// shutdownTimeout bounds the flush of pending telemetry on exit.
const shutdownTimeout = 5 * time.Second

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
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

	if components.Telemetry != nil {
		defer func() {
			sctx, scancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer scancel()
			_ = components.Telemetry.Shutdown(sctx)
		}()
	}

	var opts []commands.Option
	if lc, ok := components.Logger.(commands.LogConfigurer); ok {
		opts = append(opts, commands.WithLogConfigurer(lc))
	}

	cli := commands.New(components.App, opts...)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
