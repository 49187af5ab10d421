package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/clpack/internal/adapters/fs"
	"go.trai.ch/clpack/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ReaderNodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			reader, err := graft.Dep[ports.SourceReader](ctx)
			if err != nil {
				return nil, err
			}
			return New(reader), nil
		},
	})
}
