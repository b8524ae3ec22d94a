// Package utils holds small helpers shared by the mintup binary.
package utils

import (
	"io"
	"sync"
)

// DeferredWriter buffers writes so they can be replayed later. Each Write is
// kept as its own entry so writers that expect whole records per call, like
// zerolog.ConsoleWriter, receive them intact on Flush.
type DeferredWriter struct {
	mu      sync.Mutex
	entries [][]byte
}

// Write stores a copy of p.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries = append(d.entries, append([]byte(nil), p...))
	return len(p), nil
}

// Len returns the number of buffered entries.
func (d *DeferredWriter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// Flush writes every buffered entry to w in order and clears the buffer.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	entries := d.entries
	d.entries = nil
	d.mu.Unlock()

	for _, e := range entries {
		if _, err := w.Write(e); err != nil {
			return err
		}
	}
	return nil
}
