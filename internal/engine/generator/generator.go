// Package generator drives the per-kernel pipeline: resolve includes, hash
// the result, then emit the artifact unless it is already up to date.
package generator

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"go.trai.ch/clpack/internal/core/domain"
	"go.trai.ch/clpack/internal/core/ports"
	"go.trai.ch/clpack/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Generator produces one artifact per top-level kernel. Kernels are
// independent of each other, so they are processed in parallel; the first
// failure cancels the remaining work (fail-fast).
type Generator struct {
	resolver *resolver.Resolver
	hasher   ports.Hasher
	emitter  ports.Emitter
	store    ports.StateStore
	logger   ports.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(
	res *resolver.Resolver,
	hasher ports.Hasher,
	emitter ports.Emitter,
	store ports.StateStore,
	logger ports.Logger,
) *Generator {
	return &Generator{
		resolver: res,
		hasher:   hasher,
		emitter:  emitter,
		store:    store,
		logger:   logger,
	}
}

// Options control one generation run.
type Options struct {
	// Force regenerates every artifact even when the recorded body hash is
	// unchanged.
	Force bool

	// Parallelism bounds the number of kernels processed concurrently.
	// Zero means runtime.NumCPU().
	Parallelism int

	// Telemetry records per-kernel progress. Nil means no recording.
	Telemetry ports.Telemetry
}

// Run generates artifacts for all kernels.
func (g *Generator) Run(ctx context.Context, cfg *domain.Config, kernels []domain.Kernel, opts Options) error {
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.NumCPU()
	}
	if opts.Telemetry == nil {
		opts.Telemetry = noopTelemetry{}
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Parallelism)

	for _, k := range kernels {
		eg.Go(func() error {
			return g.generate(ctx, cfg, k, opts)
		})
	}

	return eg.Wait()
}

func (g *Generator) generate(ctx context.Context, cfg *domain.Config, k domain.Kernel, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	vtx := opts.Telemetry.Record(ctx, k.Name)

	body, err := g.resolver.Resolve(cfg.SrcDir, k.Name, cfg.Exclude)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to resolve kernel"), "kernel", k.Name)
		vtx.Complete(err)
		return err
	}

	sum := g.hasher.SumLines(body)
	outPath := filepath.Join(cfg.DstDir, cfg.ArtifactName(k.Prefix))

	if !opts.Force && g.upToDate(k.Prefix, sum, outPath) {
		g.logger.Info("skip kernel " + k.Name + " (up to date)")
		vtx.Cached()
		return nil
	}

	artifact := &domain.Artifact{
		Prefix: k.Prefix,
		Body:   body,
		Year:   time.Now().Year(),
		Holder: cfg.Holder,
		Since:  cfg.Since,
	}

	if err := g.emitter.Emit(artifact, outPath); err != nil {
		vtx.Complete(err)
		return err
	}

	err = g.store.Put(domain.GenInfo{
		Kernel:    k.Prefix,
		BodyHash:  sum,
		Artifact:  outPath,
		Timestamp: time.Now(),
	})
	if err == nil {
		g.logger.Info("process kernel " + k.Name)
	}
	vtx.Complete(err)
	return err
}

// upToDate reports whether the recorded body hash matches and the artifact
// still exists on disk. The banner year is deliberately not part of the hash:
// an unchanged kernel keeps its previously emitted year.
func (g *Generator) upToDate(prefix, sum, outPath string) bool {
	info, err := g.store.Get(prefix)
	if err != nil || info == nil || info.BodyHash != sum {
		return false
	}
	_, statErr := os.Stat(outPath)
	return statErr == nil
}

type noopTelemetry struct{}

func (noopTelemetry) Record(_ context.Context, _ string) ports.Vertex { return noopVertex{} }
func (noopTelemetry) Close() error                                    { return nil }

type noopVertex struct{}

func (noopVertex) Complete(_ error) {}
func (noopVertex) Cached()          {}
