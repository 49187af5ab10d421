package app

import "go.trai.ch/clpack/internal/core/ports"

// Components bundles the fully wired application with the adapters the CLI
// and tests need direct access to.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Lister       ports.KernelLister
	Reader       ports.SourceReader
	Hasher       ports.Hasher
	Emitter      ports.Emitter
	Store        ports.StateStore
}
