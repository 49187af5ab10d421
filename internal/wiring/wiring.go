// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/clpack/internal/adapters/config"
	_ "go.trai.ch/clpack/internal/adapters/emitter"
	_ "go.trai.ch/clpack/internal/adapters/fs"
	_ "go.trai.ch/clpack/internal/adapters/logger"
	_ "go.trai.ch/clpack/internal/adapters/state"
	_ "go.trai.ch/clpack/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/clpack/internal/app"
	_ "go.trai.ch/clpack/internal/engine/generator"
	_ "go.trai.ch/clpack/internal/engine/resolver"
)
