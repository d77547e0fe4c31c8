package ws

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bnema/framecast/internal/application"
	"github.com/bnema/framecast/internal/domain"
	"github.com/bnema/framecast/internal/ports"
	"github.com/gorilla/websocket"
)

// Handler carries the same frame events as the SSE endpoint over a
// websocket, one JSON text message per frame.
type Handler struct {
	streamer *application.StreamService
	seq      domain.Sequence
	frames   ports.FrameRepository
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewHandler(streamer *application.StreamService, seq domain.Sequence, frames ports.FrameRepository, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		streamer: streamer,
		seq:      seq,
		frames:   frames,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Info("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	summary, err := h.streamer.Stream(r.Context(), h.seq, h.frames, NewWriter(conn))
	if err != nil {
		h.logger.Error("stream session failed", "session", summary.SessionID, "error", err)
		return
	}

	if summary.State == application.SessionClosed {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "sequence exhausted"),
			time.Now().Add(time.Second))
	}
}
