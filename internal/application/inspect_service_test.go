package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/framecast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchyFrames struct {
	missing map[int]bool
	empty   map[int]bool
}

func (f *patchyFrames) PathData(_ context.Context, index int) (string, error) {
	if f.missing[index] {
		return "", fmt.Errorf("open frame asset: %w", domain.ErrFrameUnavailable)
	}
	if f.empty[index] {
		return "", nil
	}
	return fmt.Sprintf("M %d z", index), nil
}

func TestInspectCountsMissingAndEmptyFrames(t *testing.T) {
	frames := &patchyFrames{
		missing: map[int]bool{3: true, 5: true},
		empty:   map[int]bool{2: true},
	}
	svc := NewInspectService(&stubClock{now: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)})

	report, err := svc.Inspect(context.Background(), testSequence(7), frames)

	require.NoError(t, err)
	assert.Equal(t, 6, report.FramesChecked())
	assert.Equal(t, 4, report.Present)
	assert.Equal(t, 2, report.Missing)
	assert.Equal(t, 1, report.EmptyPaths)
	assert.Equal(t, 3, report.FirstMissing)
}

func TestInspectHealthySequence(t *testing.T) {
	svc := NewInspectService(nil)

	report, err := svc.Inspect(context.Background(), testSequence(4), &patchyFrames{})

	require.NoError(t, err)
	assert.Equal(t, 3, report.Present)
	assert.Zero(t, report.Missing)
	assert.Zero(t, report.FirstMissing)
	assert.False(t, report.CheckedAt.IsZero())
}

func TestInspectRejectsInvalidSequence(t *testing.T) {
	svc := NewInspectService(nil)

	_, err := svc.Inspect(context.Background(), domain.Sequence{ID: "bad"}, &patchyFrames{})
	require.Error(t, err)
}
