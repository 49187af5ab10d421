package generator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/clpack/internal/adapters/emitter"
	"go.trai.ch/clpack/internal/adapters/fs"
	"go.trai.ch/clpack/internal/adapters/logger"
	"go.trai.ch/clpack/internal/adapters/state"
	"go.trai.ch/clpack/internal/core/ports"
	"go.trai.ch/clpack/internal/engine/resolver"
)

// NodeID is the unique identifier for the generator Graft node.
const NodeID graft.ID = "engine.generator"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolver.NodeID,
			fs.HasherNodeID,
			emitter.NodeID,
			state.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Generator, error) {
			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			emit, err := graft.Dep[ports.Emitter](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.StateStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(res, hasher, emit, store, log), nil
		},
	})
}
