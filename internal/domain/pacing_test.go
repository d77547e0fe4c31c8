package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPacingStateStartsAtFrameOne(t *testing.T) {
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	state := NewPacingState(now)

	assert.Equal(t, 1, state.Frame)
	assert.Equal(t, now, state.LastEmit)
	assert.Equal(t, time.Duration(0), state.Debt)
}

func TestAdvanceSleepsWhileOnSchedule(t *testing.T) {
	spf := time.Second / 24
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	state := NewPacingState(now)

	// Emission finished well inside the frame budget.
	now = now.Add(spf / 4)
	sleep := state.Advance(now, spf)

	require.True(t, sleep)
	assert.Equal(t, now, state.LastEmit)
	assert.Negative(t, state.Debt)
}

func TestAdvanceSuppressesSleepOnceDebtCrossesOnePeriod(t *testing.T) {
	spf := time.Second / 24
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	state := NewPacingState(now)

	// Each emission takes one and a half frame periods; debt grows by
	// spf/2 per cycle and crosses the one-period gate on the second.
	now = now.Add(spf + spf/2)
	assert.True(t, state.Advance(now, spf))

	now = now.Add(spf + spf/2)
	assert.False(t, state.Advance(now, spf))

	now = now.Add(spf + spf/2)
	assert.False(t, state.Advance(now, spf))
}

func TestAdvanceDebtRecoversWhenEmissionsSpeedUp(t *testing.T) {
	spf := time.Second / 24
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	state := NewPacingState(now)

	now = now.Add(3 * spf)
	require.False(t, state.Advance(now, spf))
	debtBehind := state.Debt

	now = now.Add(spf / 10)
	state.Advance(now, spf)

	assert.Less(t, state.Debt, debtBehind)
}

func TestSequenceSPF(t *testing.T) {
	seq := Sequence{FPS: 24}
	assert.Equal(t, time.Second/24, seq.SPF())
}

func TestSequenceValidate(t *testing.T) {
	tests := []struct {
		name    string
		seq     Sequence
		wantErr bool
	}{
		{name: "valid", seq: Sequence{ID: "a", Dir: "svgs", FPS: 24, LastFrame: 10}},
		{name: "missing dir", seq: Sequence{ID: "a", FPS: 24, LastFrame: 10}, wantErr: true},
		{name: "zero fps", seq: Sequence{ID: "a", Dir: "svgs", LastFrame: 10}, wantErr: true},
		{name: "negative fps", seq: Sequence{ID: "a", Dir: "svgs", FPS: -1, LastFrame: 10}, wantErr: true},
		{name: "zero last frame", seq: Sequence{ID: "a", Dir: "svgs", FPS: 24}, wantErr: true},
		{name: "single frame sequence", seq: Sequence{ID: "a", Dir: "svgs", FPS: 24, LastFrame: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.seq.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewFrameEvent(t *testing.T) {
	event := NewFrameEvent(`<path d="M 0 0 z"/>`)

	assert.Equal(t, StreamEventID, event.ID)
	assert.Equal(t, EventOnline, event.Type)
	assert.Equal(t, `<path d="M 0 0 z"/>`, event.Payload().Frame)
}
