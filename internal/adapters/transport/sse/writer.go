package sse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bnema/framecast/internal/domain"
	"github.com/bnema/framecast/internal/ports"
)

var ErrFlushUnsupported = errors.New("response writer does not support flushing")

// Writer emits events in the conventional three-field event-stream
// framing: an id line, a data line with the JSON payload, an event-type
// line, and a terminating blank line. Each event is flushed immediately
// so the client sees frames as they are produced.
type Writer struct {
	w       io.Writer
	flusher http.Flusher
}

var _ ports.EventWriter = (*Writer)(nil)

func NewWriter(w http.ResponseWriter) (*Writer, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, ErrFlushUnsupported
	}

	return &Writer{w: w, flusher: flusher}, nil
}

func (w *Writer) WriteEvent(ctx context.Context, event domain.StreamEvent) error {
	// A dropped connection cancels the request context before writes
	// start failing; checking here keeps disconnect detection prompt.
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("encode event payload: %w", err)
	}

	if _, err := fmt.Fprintf(w.w, "id: %d\ndata: %s\nevent: %s\n\n", event.ID, payload, event.Type); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	w.flusher.Flush()

	return nil
}
