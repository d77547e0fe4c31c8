package domain

import "time"

// PacingState tracks the timing budget of a single stream session. One
// instance per session, owned by that session; never shared.
type PacingState struct {
	// Frame is the next frame index to emit, starting at 1.
	Frame int
	// LastEmit is the wall-clock time of the previous emission.
	LastEmit time.Time
	// Debt accumulates the signed amount by which real elapsed time has
	// exceeded the nominal per-frame budget.
	Debt time.Duration
}

func NewPacingState(now time.Time) PacingState {
	return PacingState{Frame: 1, LastEmit: now}
}

// Advance records the emission that just completed and reports whether the
// session should sleep a full frame period before the next one. The
// correction is coarse on purpose: either a full spf sleep or none at all,
// gated on whether accumulated debt has crossed one frame period. A
// proportional corrector would change observable delivery timing.
func (p *PacingState) Advance(now time.Time, spf time.Duration) bool {
	elapsed := now.Sub(p.LastEmit)
	p.LastEmit = now
	p.Debt += elapsed - spf
	return p.Debt < spf
}
