package application

import (
	"time"

	"github.com/bnema/framecast/internal/domain"
)

type SessionState string

const (
	SessionClosed  SessionState = "closed"
	SessionAborted SessionState = "aborted"
)

// SessionSummary reports how a finished stream session ended.
type SessionSummary struct {
	SessionID  string
	SequenceID domain.SequenceID
	FramesSent int
	State      SessionState
	Duration   time.Duration
}

// Report describes the health of a sequence's asset directory: which
// frames the streaming loop would actually read, and what it would find.
type Report struct {
	Sequence   domain.Sequence
	Present    int
	Missing    int
	EmptyPaths int
	// FirstMissing is the lowest missing frame index, 0 when none are
	// missing. The first gap is where a live session would abort.
	FirstMissing int
	CheckedAt    time.Time
}

// FramesChecked is the number of assets a session would read: frames
// 1 through LastFrame-1.
func (r Report) FramesChecked() int {
	if r.Sequence.LastFrame < 1 {
		return 0
	}
	return r.Sequence.LastFrame - 1
}
