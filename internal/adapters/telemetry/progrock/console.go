package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*ConsoleWriter)(nil)

// ConsoleWriter renders status updates as one plain line per finished
// vertex. It implements progrock.Writer so it can back a Recorder directly,
// without a full-screen frontend.
type ConsoleWriter struct {
	out io.Writer

	mu       sync.Mutex
	reported map[string]struct{}
}

// NewConsoleWriter creates a ConsoleWriter printing to out.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{
		out:      out,
		reported: map[string]struct{}{},
	}
}

// WriteStatus prints a line for every vertex that completed since the last
// update. Running vertices stay silent until they finish.
func (w *ConsoleWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil {
			continue
		}
		if _, ok := w.reported[v.Id]; ok {
			continue
		}
		w.reported[v.Id] = struct{}{}

		switch {
		case v.Error != nil:
			_, _ = fmt.Fprintf(w.out, "FAIL   %s: %s\n", v.Name, v.GetError())
		case v.Cached:
			_, _ = fmt.Fprintf(w.out, "CACHED %s\n", v.Name)
		default:
			_, _ = fmt.Fprintf(w.out, "DONE   %s\n", v.Name)
		}
	}

	return nil
}

// Close satisfies the writer contract. Nothing is buffered.
func (w *ConsoleWriter) Close() error {
	return nil
}
