package ports

import (
	"context"

	"github.com/bnema/framecast/internal/domain"
)

// EventWriter pushes one event to the connected client. A returned error
// means the client is gone; the session stops without retrying.
type EventWriter interface {
	WriteEvent(ctx context.Context, event domain.StreamEvent) error
}
