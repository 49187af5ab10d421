package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/clpack/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
// The default is a no-op recorder; the CLI swaps in a live recorder when
// progress output is requested.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return NewNoop(), nil
		},
	})
}
