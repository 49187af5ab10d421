package ports

import "go.trai.ch/clpack/internal/core/domain"

// StateStore persists per-kernel generation records across runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=state_store.go -destination=mocks/mock_state_store.go -package=mocks
type StateStore interface {
	// Get retrieves the generation record for a kernel prefix.
	// Returns nil, nil if not found.
	Get(prefix string) (*domain.GenInfo, error)

	// Put stores the generation record.
	Put(info domain.GenInfo) error
}
