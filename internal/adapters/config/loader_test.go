package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clpack/internal/adapters/config"
	"go.trai.ch/clpack/internal/core/domain"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "clpack.yaml"))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_FullFile(t *testing.T) {
	content := `
version: "1"
src: kernels
dst: generated
sourceExt: ".ocl"
outputExt: ".h"
exclude: ["defs.ocl", "types.ocl"]
copyright:
  holder: "Acme"
  since: 2021
`
	path := writeConfig(t, content)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "kernels", cfg.SrcDir)
	assert.Equal(t, "generated", cfg.DstDir)
	assert.Equal(t, ".ocl", cfg.SourceExt)
	assert.Equal(t, ".h", cfg.OutputExt)
	assert.Equal(t, []string{"defs.ocl", "types.ocl"}, cfg.Exclude)
	assert.Equal(t, "Acme", cfg.Holder)
	assert.Equal(t, 2021, cfg.Since)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	content := `
version: "1"
src: my/kernels
`
	path := writeConfig(t, content)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "my/kernels", cfg.SrcDir)
	assert.Equal(t, domain.DefaultDstDir, cfg.DstDir)
	assert.Equal(t, domain.DefaultSourceExt, cfg.SourceExt)
	assert.Equal(t, []string{domain.DefaultSharedDefs}, cfg.Exclude)
}

func TestLoad_ExplicitEmptyExcludeList(t *testing.T) {
	content := `
version: "1"
exclude: []
`
	path := writeConfig(t, content)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Exclude)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "version: [unclosed")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_InvalidExtension(t *testing.T) {
	content := `
version: "1"
sourceExt: "cl"
`
	path := writeConfig(t, content)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config file")
}

func TestFileConfigLoader_Load(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
version: "1"
src: kernels
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "clpack.yaml"), []byte(content), 0o600))

	loader := &config.FileConfigLoader{Filename: "clpack.yaml"}
	cfg, err := loader.Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "kernels", cfg.SrcDir)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clpack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
