package ws

import (
	"context"
	"fmt"

	"github.com/bnema/framecast/internal/domain"
	"github.com/bnema/framecast/internal/ports"
	"github.com/gorilla/websocket"
)

// message mirrors the SSE framing fields in a single JSON text message.
type message struct {
	ID    int    `json:"id"`
	Event string `json:"event"`
	Frame string `json:"frame"`
}

type Writer struct {
	conn *websocket.Conn
}

var _ ports.EventWriter = (*Writer)(nil)

func NewWriter(conn *websocket.Conn) *Writer {
	return &Writer{conn: conn}
}

func (w *Writer) WriteEvent(ctx context.Context, event domain.StreamEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := message{
		ID:    event.ID,
		Event: string(event.Type),
		Frame: event.Frame,
	}
	if err := w.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("write event: %w", err)
	}

	return nil
}
