// Package state persists per-kernel generation records in a flat JSON file so
// unchanged kernels can be skipped on subsequent runs.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/clpack/internal/core/domain"
	"go.trai.ch/clpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultFilename is the state file written next to the config file.
const DefaultFilename = ".clpack_state.json"

var _ ports.StateStore = (*Store)(nil)

// Store implements ports.StateStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.GenInfo
}

// NewStore creates a new StateStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.GenInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read state file")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal state file")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal state file")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for state file")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write state file")
	}

	return nil
}

// Get retrieves the generation record for a kernel prefix.
func (s *Store) Get(prefix string) (*domain.GenInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[prefix]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the generation record and persists the file.
func (s *Store) Put(info domain.GenInfo) error {
	s.mu.Lock()
	s.cache[info.Kernel] = info
	s.mu.Unlock()

	return s.save()
}
