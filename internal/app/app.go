// Package app implements the application layer for clpack.
package app

import (
	"context"

	"go.trai.ch/clpack/internal/core/domain"
	"go.trai.ch/clpack/internal/core/ports"
	"go.trai.ch/clpack/internal/engine/generator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	lister       ports.KernelLister
	generator    *generator.Generator
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	lister ports.KernelLister,
	gen *generator.Generator,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		lister:       lister,
		generator:    gen,
		logger:       logger,
		telemetry:    telemetry,
	}
}

// WithTelemetry replaces the progress recorder. Used by the CLI when live
// progress output is requested.
func (a *App) WithTelemetry(t ports.Telemetry) {
	a.telemetry = t
}

// WithConfigLoader replaces the configuration loader. Used by the CLI when a
// non-default config path is given.
func (a *App) WithConfigLoader(loader ports.ConfigLoader) {
	a.configLoader = loader
}

// RunOptions carries the CLI overrides for one generation run.
type RunOptions struct {
	// Src and Dst override the configured directories when non-empty.
	Src string
	Dst string

	// Force regenerates every artifact regardless of recorded state.
	Force bool
}

// Run executes the generation process: load configuration, enumerate the
// top-level kernels and produce one artifact per kernel.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Src != "" {
		cfg.SrcDir = opts.Src
	}
	if opts.Dst != "" {
		cfg.DstDir = opts.Dst
	}

	kernels, err := a.lister.List(cfg.SrcDir, cfg.SourceExt)
	if err != nil {
		return err
	}
	if len(kernels) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrNoKernelsFound, "nothing to generate"), "dir", cfg.SrcDir)
	}

	a.logger.Info("process directory " + cfg.SrcDir)
	a.logger.Info("save to directory " + cfg.DstDir)

	runErr := a.generator.Run(ctx, cfg, kernels, generator.Options{
		Force:     opts.Force,
		Telemetry: a.telemetry,
	})

	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn("failed to close telemetry: " + err.Error())
	}

	if runErr != nil {
		return zerr.Wrap(runErr, "generation failed")
	}
	return nil
}
