package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/clpack/internal/core/domain"
	"go.trai.ch/clpack/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash sums over resolved line sequences.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// SumLines computes a deterministic hash over the sequence. A zero byte is
// written between lines so that moving a line boundary changes the sum.
func (h *Hasher) SumLines(lines domain.LineSequence) string {
	hasher := xxhash.New()
	for _, line := range lines {
		_, _ = hasher.WriteString(line)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
