// Package resolver implements include resolution for kernel sources: the
// recursive inlining of `#include "file"` directives into a flat line
// sequence.
package resolver

import (
	"strings"

	"go.trai.ch/clpack/internal/core/domain"
	"go.trai.ch/clpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// directiveKeyword marks an include line. Recognition is purely textual: the
// line must start with the keyword. Kernel sources are assumed well-formed
// and to place includes at the start of a line.
const directiveKeyword = "#include"

// Resolver expands include directives depth-first at the point of reference.
type Resolver struct {
	reader ports.SourceReader
}

// New creates a new Resolver reading sources through the given reader.
func New(reader ports.SourceReader) *Resolver {
	return &Resolver{reader: reader}
}

// Resolve reads dir/name and returns its flattened line sequence. Each
// distinct referenced file is expanded at most once across the whole call;
// later references to an already-expanded name are dropped. The top-level
// name counts as expanded from the start, so a cyclic include back to it is
// dropped too. Names in exclude are treated the same way: they are never read
// and contribute zero lines, whether or not they exist. The shared visited
// set makes resolution terminate on include cycles.
func (r *Resolver) Resolve(dir, name string, exclude []string) (domain.LineSequence, error) {
	visited := make(map[string]struct{}, len(exclude)+1)
	visited[name] = struct{}{}
	for _, n := range exclude {
		visited[n] = struct{}{}
	}

	var out domain.LineSequence
	if err := r.expand(dir, name, visited, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resolver) expand(dir, name string, visited map[string]struct{}, out *domain.LineSequence) error {
	lines, err := r.reader.ReadLines(dir, name)
	if err != nil {
		return err
	}

	for _, line := range lines {
		if !strings.HasPrefix(line, directiveKeyword) {
			*out = append(*out, line)
			continue
		}

		ref, err := parseDirective(line)
		if err != nil {
			return zerr.With(err, "file", name)
		}

		if _, seen := visited[ref]; seen {
			continue
		}
		visited[ref] = struct{}{}

		if err := r.expand(dir, ref, visited, out); err != nil {
			return err
		}
	}

	return nil
}

// parseDirective extracts the referenced file name from an include line. The
// content after the keyword must be a bare file name in double quotes.
func parseDirective(line string) (string, error) {
	rest := strings.TrimPrefix(line, directiveKeyword)
	rest = strings.TrimRight(rest, "\r\n")
	rest = strings.TrimSpace(rest)

	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", zerr.With(zerr.Wrap(domain.ErrMalformedDirective, "expected quoted file name"), "line", strings.TrimRight(line, "\r\n"))
	}

	name := rest[1 : len(rest)-1]
	if name == "" || strings.Contains(name, `"`) {
		return "", zerr.With(zerr.Wrap(domain.ErrMalformedDirective, "invalid file name"), "line", strings.TrimRight(line, "\r\n"))
	}

	return name, nil
}
