package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clpack/internal/adapters/fs"
	"go.trai.ch/clpack/internal/core/domain"
)

func TestReader_PreservesLineTerminators(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "base.cl"), []byte("A\nB\r\nC"), 0o600))

	reader := fs.NewReader()
	lines, err := reader.ReadLines(tmpDir, "base.cl")
	require.NoError(t, err)

	assert.Equal(t, domain.LineSequence{"A\n", "B\r\n", "C"}, lines)
}

func TestReader_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "empty.cl"), nil, 0o600))

	reader := fs.NewReader()
	lines, err := reader.ReadLines(tmpDir, "empty.cl")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReader_MissingFile(t *testing.T) {
	reader := fs.NewReader()
	_, err := reader.ReadLines(t.TempDir(), "gone.cl")
	require.ErrorIs(t, err, domain.ErrIncludeNotFound)
}

func TestLister_FiltersBySourceExtension(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "vxm.cl"), []byte("K\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "assign.cl"), []byte("K\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("doc"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "nested.cl"), 0o750))

	lister := fs.NewLister()
	kernels, err := lister.List(tmpDir, ".cl")
	require.NoError(t, err)

	// os.ReadDir returns entries in lexical order; directories are skipped
	// even when their names carry the extension.
	assert.Equal(t, []domain.Kernel{
		{Name: "assign.cl", Prefix: "assign"},
		{Name: "vxm.cl", Prefix: "vxm"},
	}, kernels)
}

func TestLister_EmptyDirectory(t *testing.T) {
	lister := fs.NewLister()
	kernels, err := lister.List(t.TempDir(), ".cl")
	require.NoError(t, err)
	assert.Empty(t, kernels)
}

func TestLister_MissingDirectory(t *testing.T) {
	lister := fs.NewLister()
	_, err := lister.List(filepath.Join(t.TempDir(), "gone"), ".cl")
	require.Error(t, err)
}

func TestHasher_Deterministic(t *testing.T) {
	hasher := fs.NewHasher()
	lines := domain.LineSequence{"A\n", "B\n"}

	assert.Equal(t, hasher.SumLines(lines), hasher.SumLines(lines))
	assert.Len(t, hasher.SumLines(lines), 16)
}

func TestHasher_LineBoundariesMatter(t *testing.T) {
	hasher := fs.NewHasher()

	// Same bytes, different line split.
	a := hasher.SumLines(domain.LineSequence{"ab", "c"})
	b := hasher.SumLines(domain.LineSequence{"a", "bc"})
	assert.NotEqual(t, a, b)
}

func TestHasher_ContentMatters(t *testing.T) {
	hasher := fs.NewHasher()

	a := hasher.SumLines(domain.LineSequence{"A\n"})
	b := hasher.SumLines(domain.LineSequence{"B\n"})
	assert.NotEqual(t, a, b)
}
