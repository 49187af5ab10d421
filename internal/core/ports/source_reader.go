package ports

import "go.trai.ch/clpack/internal/core/domain"

// SourceReader reads kernel source files by name from a base directory.
//
//go:generate mockgen -source=source_reader.go -destination=mocks/mock_source_reader.go -package=mocks
type SourceReader interface {
	// ReadLines returns the raw lines of dir/name, each line keeping its
	// terminator exactly as stored on disk.
	ReadLines(dir, name string) (domain.LineSequence, error)
}

// KernelLister enumerates top-level kernel files in a source directory.
type KernelLister interface {
	// List returns the kernels found directly in dir whose names carry the
	// given source extension, in lexical order.
	List(dir, sourceExt string) ([]domain.Kernel, error)
}
