// Package main is the entry point for the clpack generator.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/clpack/cmd/clpack/commands"
	"go.trai.ch/clpack/internal/adapters/config"
	"go.trai.ch/clpack/internal/app"
	_ "go.trai.ch/clpack/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)
	cli.SetConfigHook(func(path string) {
		components.App.WithConfigLoader(&config.FileConfigLoader{Filename: path})
	})

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
