// Package output writes rendered log batches: an optional shared-field
// header followed by one line per event, in batch order.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// sharedMarker introduces the batch-level header holding the fields
// factored out of every line.
const sharedMarker = "<SHARED>"

// Writer handles writing one rendered batch.
type Writer struct {
	w io.Writer
}

// New creates a new output Writer.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteBatch writes the shared-field header (omitted when shared is
// empty) and then the rendered lines.
func (wr *Writer) WriteBatch(shared map[string]any, lines []string) error {
	if len(shared) > 0 {
		blob, err := json.MarshalIndent(shared, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding shared fields: %w", err)
		}
		if _, err := fmt.Fprintf(wr.w, "%s %s\n\n", sharedMarker, blob); err != nil {
			return err
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(wr.w, line); err != nil {
			return err
		}
	}

	return nil
}
