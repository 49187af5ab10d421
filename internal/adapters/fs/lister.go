package fs

import (
	"os"
	"strings"

	"go.trai.ch/clpack/internal/core/domain"
	"go.trai.ch/clpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.KernelLister = (*Lister)(nil)

// Lister enumerates top-level kernel files in a source directory.
type Lister struct{}

// NewLister creates a new Lister.
func NewLister() *Lister {
	return &Lister{}
}

// List returns the kernels found directly in dir whose names end with the
// source extension. Subdirectories are not descended into; the input tree is
// expected to be flat.
func (l *Lister) List(dir, sourceExt string) ([]domain.Kernel, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read source directory"), "dir", dir)
	}

	var kernels []domain.Kernel
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, sourceExt) {
			continue
		}
		kernels = append(kernels, domain.NewKernel(name, sourceExt))
	}

	return kernels, nil
}
