package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/clpack/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/clpack/internal/adapters/emitter"   //nolint:depguard // Wired in app layer
	"go.trai.ch/clpack/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/clpack/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/clpack/internal/adapters/state"     //nolint:depguard // Wired in app layer
	"go.trai.ch/clpack/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/clpack/internal/core/ports"
	"go.trai.ch/clpack/internal/engine/generator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ListerNodeID,
			generator.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.NodeID,
			emitter.NodeID,
			fs.ReaderNodeID,
			fs.ListerNodeID,
			fs.HasherNodeID,
			logger.NodeID,
			state.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	lister, err := graft.Dep[ports.KernelLister](ctx)
	if err != nil {
		return nil, err
	}

	gen, err := graft.Dep[*generator.Generator](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, lister, gen, log, tel), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	lister, err := graft.Dep[ports.KernelLister](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.SourceReader](ctx)
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

	return &Components{
		App:          application,
		Logger:       log,
		ConfigLoader: loader,
		Lister:       lister,
		Reader:       reader,
		Hasher:       hasher,
		Emitter:      emit,
		Store:        store,
	}, nil
}
