package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/framecast/internal/domain"
	"github.com/bnema/framecast/internal/ports"
	"github.com/google/uuid"
)

// StreamService drives one client connection end-to-end: it pulls frames
// from a FrameRepository in order, emits each as an event through the
// given EventWriter, and paces emissions so the perceived frame rate
// stays close to the sequence's nominal rate.
type StreamService struct {
	clock   ports.Clock
	sleeper ports.Sleeper
	logger  *slog.Logger
}

func NewStreamService(clock ports.Clock, sleeper ports.Sleeper, logger *slog.Logger) *StreamService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if sleeper == nil {
		sleeper = ports.SystemSleeper{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StreamService{
		clock:   clock,
		sleeper: sleeper,
		logger:  logger,
	}
}

// Stream runs a session until the sequence is exhausted or the client
// drops. Frames are emitted strictly in increasing index order, one at a
// time; a clean run emits exactly LastFrame-1 events. A failed push
// aborts the session with a nil error: there is no other party to
// surface a disconnect to. A missing asset aborts with an error wrapping
// domain.ErrFrameUnavailable, since the sequence cannot continue.
func (s *StreamService) Stream(ctx context.Context, seq domain.Sequence, frames ports.FrameRepository, sink ports.EventWriter) (SessionSummary, error) {
	if err := seq.Validate(); err != nil {
		return SessionSummary{}, fmt.Errorf("validate sequence: %w", err)
	}

	summary := SessionSummary{
		SessionID:  uuid.NewString(),
		SequenceID: seq.ID,
	}
	logger := s.logger.With("session", summary.SessionID, "seq", string(seq.ID))

	spf := seq.SPF()
	started := s.clock.Now()
	state := domain.NewPacingState(started)

	logger.Info("session started", "fps", seq.FPS, "last_frame", seq.LastFrame)

	for state.Frame < seq.LastFrame {
		path, err := frames.PathData(ctx, state.Frame)
		if err != nil {
			summary.State = SessionAborted
			summary.Duration = s.clock.Now().Sub(started)
			return summary, fmt.Errorf("read frame %d: %w", state.Frame, err)
		}

		if err := sink.WriteEvent(ctx, domain.NewFrameEvent(path)); err != nil {
			logger.Info("client disconnected", "frame", state.Frame, "reason", err)
			summary.State = SessionAborted
			summary.Duration = s.clock.Now().Sub(started)
			return summary, nil
		}

		summary.FramesSent++
		state.Frame++

		if state.Advance(s.clock.Now(), spf) {
			s.sleeper.Sleep(ctx, spf)
		}
	}

	summary.State = SessionClosed
	summary.Duration = s.clock.Now().Sub(started)
	logger.Info("session closed", "frames", summary.FramesSent, "duration", summary.Duration)

	return summary, nil
}
