// Package fs implements filesystem adapters: kernel enumeration, line reading
// and content hashing.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/clpack/internal/core/domain"
	"go.trai.ch/clpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceReader = (*Reader)(nil)

// Reader implements ports.SourceReader over the local filesystem.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadLines reads dir/name and returns its lines with terminators preserved.
func (r *Reader) ReadLines(dir, name string) (domain.LineSequence, error) {
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrIncludeNotFound, name), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read source file"), "path", path)
	}

	return splitLines(data), nil
}

// splitLines splits raw file content into lines, each keeping its trailing
// newline. A final line without a terminator is kept as-is.
func splitLines(data []byte) domain.LineSequence {
	if len(data) == 0 {
		return nil
	}

	var lines domain.LineSequence
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, string(data[start:i+1]))
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, string(data[start:]))
	}
	return lines
}
