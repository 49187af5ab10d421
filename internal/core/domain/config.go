package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Default configuration values, matching the kernel tree layout this tool was
// built for. Any of them can be overridden via clpack.yaml or CLI flags.
const (
	DefaultSrcDir    = "src/opencl/kernels"
	DefaultDstDir    = "src/opencl/generated"
	DefaultSourceExt = ".cl"
	DefaultOutputExt = ".hpp"

	// DefaultSharedDefs is the shared-definitions file that is assumed to be
	// provided by the build environment and is never inlined.
	DefaultSharedDefs = "common_def.cl"

	// ArtifactPrefix is prepended to every generated file name.
	ArtifactPrefix = "auto_"
)

// Config holds the validated settings for one generation run.
type Config struct {
	SrcDir    string
	DstDir    string
	SourceExt string
	OutputExt string

	// Exclude lists file names that are treated as already expanded: they are
	// never inlined and contribute zero lines when referenced.
	Exclude []string

	// Copyright banner fields. Since of zero means the banner carries only
	// the current year.
	Holder string
	Since  int
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		SrcDir:    DefaultSrcDir,
		DstDir:    DefaultDstDir,
		SourceExt: DefaultSourceExt,
		OutputExt: DefaultOutputExt,
		Exclude:   []string{DefaultSharedDefs},
	}
}

// Validate checks the configuration for values the generator cannot work with.
func (c *Config) Validate() error {
	if c.SrcDir == "" {
		return zerr.New("source directory must not be empty")
	}
	if c.DstDir == "" {
		return zerr.New("output directory must not be empty")
	}
	if !strings.HasPrefix(c.SourceExt, ".") {
		return zerr.With(zerr.New("source extension must start with a dot"), "ext", c.SourceExt)
	}
	if !strings.HasPrefix(c.OutputExt, ".") {
		return zerr.With(zerr.New("output extension must start with a dot"), "ext", c.OutputExt)
	}
	return nil
}

// ArtifactName returns the output file name for a kernel prefix,
// e.g. "vector_assign" becomes "auto_vector_assign.hpp".
func (c *Config) ArtifactName(prefix string) string {
	return ArtifactPrefix + prefix + c.OutputExt
}
