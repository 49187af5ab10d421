package ports

import "go.trai.ch/clpack/internal/core/domain"

// Hasher defines the interface for computing content hashes.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// SumLines computes a deterministic hash over a resolved line sequence.
	SumLines(lines domain.LineSequence) string
}
