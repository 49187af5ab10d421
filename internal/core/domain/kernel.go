package domain

import "strings"

// Kernel identifies one top-level source file enumerated from the input
// directory. Name is the file name including its extension, Prefix is the
// name with the source extension stripped.
type Kernel struct {
	Name   string
	Prefix string
}

// NewKernel builds a Kernel from a file name and the configured source
// extension.
func NewKernel(name, sourceExt string) Kernel {
	return Kernel{
		Name:   name,
		Prefix: strings.TrimSuffix(name, sourceExt),
	}
}

// LineSequence is the ordered line content of one resolved kernel. Each line
// keeps its terminator exactly as read from disk.
type LineSequence []string

// Bytes concatenates the sequence into a single byte slice.
func (ls LineSequence) Bytes() []byte {
	n := 0
	for _, line := range ls {
		n += len(line)
	}
	out := make([]byte, 0, n)
	for _, line := range ls {
		out = append(out, line...)
	}
	return out
}
