package sse

import (
	"log/slog"
	"net/http"

	"github.com/bnema/framecast/internal/application"
	"github.com/bnema/framecast/internal/domain"
	"github.com/bnema/framecast/internal/ports"
)

// Handler streams a whole sequence to one client over a long-lived SSE
// response. Each connection gets its own session with independent pacing
// state.
type Handler struct {
	streamer *application.StreamService
	seq      domain.Sequence
	frames   ports.FrameRepository
	logger   *slog.Logger
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
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writer, err := NewWriter(w)
	if err != nil {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	summary, err := h.streamer.Stream(r.Context(), h.seq, h.frames, writer)
	if err != nil {
		// The stream just ends; no error payload is ever sent.
		h.logger.Error("stream session failed", "session", summary.SessionID, "error", err)
	}
}
