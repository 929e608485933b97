// Package main is the entry point for the pexwrap archive builder.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/pexwrap/cmd/pexwrap/commands"
	"go.trai.ch/pexwrap/internal/app"
	"go.trai.ch/pexwrap/internal/core/domain"
	_ "go.trai.ch/pexwrap/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return domain.ExitFailure
	}
	components.Logger.SetOutput(stderr)
	defer func() {
		if err := components.Telemetry.Close(); err != nil {
			components.Logger.Warn("failed to close telemetry: " + err.Error())
		}
	}()

	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}

	cli := commands.New(components.App, components.ConfigLoader, components.Logger)
	cli.SetArgs(args)
	cli.SetIn(stdin)
	cli.SetOutput(stdout)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return domain.ExitCode(err)
	}
	return domain.ExitSuccess
}
