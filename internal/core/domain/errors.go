package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedDirective is returned when an include line is recognized but
	// the referenced file name cannot be extracted cleanly.
	ErrMalformedDirective = zerr.New("malformed include directive")

	// ErrIncludeNotFound is returned when a referenced kernel file does not
	// exist under the source directory.
	ErrIncludeNotFound = zerr.New("included file not found")

	// ErrNoKernelsFound is returned when the source directory contains no
	// files with the configured source extension.
	ErrNoKernelsFound = zerr.New("no kernel sources found")
)
