package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clpack/internal/core/domain"
)

func TestNewKernel(t *testing.T) {
	k := domain.NewKernel("vector_assign.cl", ".cl")
	assert.Equal(t, "vector_assign.cl", k.Name)
	assert.Equal(t, "vector_assign", k.Prefix)
}

func TestLineSequence_Bytes(t *testing.T) {
	ls := domain.LineSequence{"A\n", "B\r\n", "C"}
	assert.Equal(t, []byte("A\nB\r\nC"), ls.Bytes())

	var empty domain.LineSequence
	assert.Empty(t, empty.Bytes())
}

func TestArtifact_ConstName(t *testing.T) {
	a := &domain.Artifact{Prefix: "vxm"}
	assert.Equal(t, "source_vxm", a.ConstName())
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, "src/opencl/kernels", cfg.SrcDir)
	assert.Equal(t, "src/opencl/generated", cfg.DstDir)
	assert.Equal(t, []string{"common_def.cl"}, cfg.Exclude)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr bool
	}{
		{"defaults are valid", func(*domain.Config) {}, false},
		{"empty src", func(c *domain.Config) { c.SrcDir = "" }, true},
		{"empty dst", func(c *domain.Config) { c.DstDir = "" }, true},
		{"source ext without dot", func(c *domain.Config) { c.SourceExt = "cl" }, true},
		{"output ext without dot", func(c *domain.Config) { c.OutputExt = "hpp" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ArtifactName(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, "auto_vxm.hpp", cfg.ArtifactName("vxm"))
}
