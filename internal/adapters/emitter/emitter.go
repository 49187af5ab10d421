// Package emitter renders resolved kernels into embeddable C++ headers and
// writes them to the output directory.
package emitter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/clpack/internal/core/domain"
	"go.trai.ch/clpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Emitter = (*FileEmitter)(nil)

var banner = strings.Repeat("/", 68)

// FileEmitter implements ports.Emitter by writing rendered artifacts to disk.
type FileEmitter struct{}

// NewFileEmitter creates a new FileEmitter.
func NewFileEmitter() *FileEmitter {
	return &FileEmitter{}
}

// Emit renders the artifact and writes it to outPath, creating parent
// directories as needed.
func (e *FileEmitter) Emit(artifact *domain.Artifact, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", outPath)
	}

	//nolint:gosec // Generated headers are meant to be world-readable
	if err := os.WriteFile(outPath, Render(artifact), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", outPath)
	}

	return nil
}

// Render produces the artifact envelope: an autogenerated-file banner, a
// pragma guard and the body embedded in a C++ raw string literal. The raw
// literal form tolerates quotes, backslashes and newlines in the body without
// escaping individual lines.
func Render(artifact *domain.Artifact) []byte {
	var buf bytes.Buffer

	buf.WriteString(banner + "\n")
	buf.WriteString(copyrightLine(artifact) + "\n")
	buf.WriteString("// Autogenerated file, do not modify\n")
	buf.WriteString(banner + "\n\n")
	buf.WriteString("#pragma once\n\n")
	buf.WriteString("static const char " + artifact.ConstName() + "[] = R\"(\n")
	buf.Write(artifact.Body.Bytes())
	buf.WriteString("\n)\";")

	return buf.Bytes()
}

func copyrightLine(artifact *domain.Artifact) string {
	years := fmt.Sprintf("%d", artifact.Year)
	if artifact.Since > 0 && artifact.Since < artifact.Year {
		years = fmt.Sprintf("%d - %d", artifact.Since, artifact.Year)
	}
	if artifact.Holder == "" {
		return "// Copyright (c) " + years
	}
	return "// Copyright (c) " + years + " " + artifact.Holder
}
