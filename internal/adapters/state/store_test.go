package state_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clpack/internal/adapters/state"
	"go.trai.ch/clpack/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".clpack_state.json")

	store, err := state.NewStore(path)
	require.NoError(t, err)

	info := domain.GenInfo{
		Kernel:    "vxm",
		BodyHash:  "00000000deadbeef",
		Artifact:  "generated/auto_vxm.hpp",
		Timestamp: time.Now().UTC(),
	}
	require.NoError(t, store.Put(info))

	got, err := store.Get("vxm")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info.BodyHash, got.BodyHash)
	assert.Equal(t, info.Artifact, got.Artifact)
}

func TestStore_GetMissing(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	got, err := store.Get("unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	first, err := state.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(domain.GenInfo{Kernel: "assign", BodyHash: "abc"}))

	second, err := state.NewStore(path)
	require.NoError(t, err)

	got, err := second.Get("assign")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "abc", got.BodyHash)
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := state.NewStore(path)
	require.NoError(t, err)

	got, err := store.Get("anything")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := state.NewStore(path)
	require.Error(t, err)
}
