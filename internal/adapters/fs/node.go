package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/clpack/internal/core/ports"
)

const (
	// ReaderNodeID is the unique identifier for the source reader Graft node.
	ReaderNodeID graft.ID = "adapter.fs.reader"
	// ListerNodeID is the unique identifier for the kernel lister Graft node.
	ListerNodeID graft.ID = "adapter.fs.lister"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.SourceReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceReader, error) {
			return NewReader(), nil
		},
	})

	graft.Register(graft.Node[ports.KernelLister]{
		ID:        ListerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.KernelLister, error) {
			return NewLister(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
