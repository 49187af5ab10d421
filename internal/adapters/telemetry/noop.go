// Package telemetry provides progress recording for generation runs.
package telemetry

import (
	"context"

	"go.trai.ch/clpack/internal/core/ports"
)

// Noop is a no-op implementation of ports.Telemetry.
type Noop struct{}

// NewNoop creates a new Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a no-op vertex.
func (n *Noop) Record(_ context.Context, _ string) ports.Vertex {
	return &NoopVertex{}
}

// Close does nothing.
func (n *Noop) Close() error {
	return nil
}

// NoopVertex is a no-op implementation of ports.Vertex.
type NoopVertex struct{}

// Complete does nothing.
func (v *NoopVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoopVertex) Cached() {}
