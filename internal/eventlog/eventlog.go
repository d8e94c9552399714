// Package eventlog implements the two append-only JSON-lines log streams
// required for observability: every oracle call (request args and full response), and
// every minimax iteration event (stateEvaluation, minimaxIter). Writes are
// fire-and-forget and must never block the search ("log
// back-pressure"): a single writer goroutine drains a bounded channel and
// appends to the underlying file; a full channel drops the event rather
// than stalling the caller.
package eventlog

import (
	"bufio"
	"encoding/json"
	"os"
	"sync"
)

// Writer serializes one JSON object per line to an underlying file.
type Writer struct {
	events chan json.RawMessage
	done   chan struct{}
	once   sync.Once
}

// NewWriter opens (creating/appending to) path and starts its drain
// goroutine. backlog bounds how many pending events may queue before new
// events are dropped.
func NewWriter(path string, backlog int) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	w := &Writer{
		events: make(chan json.RawMessage, backlog),
		done:   make(chan struct{}),
	}
	go w.drain(f)
	return w, nil
}

func (w *Writer) drain(f *os.File) {
	defer f.Close()
	defer close(w.done)

	bw := bufio.NewWriter(f)
	defer bw.Flush()

	for raw := range w.events {
		bw.Write(raw)
		bw.WriteByte('\n')
		bw.Flush()
	}
}

// Write enqueues event for serialization. Never blocks: if the backlog is
// full, the event is silently dropped (logged events are diagnostics, not
// an audit trail the search's correctness depends on).
func (w *Writer) Write(event interface{}) {
	if w == nil {
		return
	}
	raw, err := json.Marshal(event)
	if err != nil {
		return
	}
	select {
	case w.events <- raw:
	default:
	}
}

// Close stops accepting new events and waits for the backlog to drain.
func (w *Writer) Close() {
	if w == nil {
		return
	}
	w.once.Do(func() {
		close(w.events)
	})
	<-w.done
}
