package ports

import "go.trai.ch/clpack/internal/core/domain"

// Emitter writes a generated artifact to disk.
//
//go:generate mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type Emitter interface {
	// Emit renders the artifact envelope and writes it to outPath, creating
	// parent directories as needed.
	Emit(artifact *domain.Artifact, outPath string) error
}
