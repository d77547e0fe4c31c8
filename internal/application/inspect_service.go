package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/framecast/internal/domain"
	"github.com/bnema/framecast/internal/ports"
)

// InspectService walks the frames a stream session would read and reports
// missing assets and assets whose path block could not be located.
type InspectService struct {
	clock ports.Clock
}

func NewInspectService(clock ports.Clock) *InspectService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &InspectService{clock: clock}
}

func (s *InspectService) Inspect(ctx context.Context, seq domain.Sequence, frames ports.FrameRepository) (Report, error) {
	if err := seq.Validate(); err != nil {
		return Report{}, fmt.Errorf("validate sequence: %w", err)
	}

	report := Report{Sequence: seq, CheckedAt: s.clock.Now()}

	for index := 1; index < seq.LastFrame; index++ {
		path, err := frames.PathData(ctx, index)
		if errors.Is(err, domain.ErrFrameUnavailable) {
			report.Missing++
			if report.FirstMissing == 0 {
				report.FirstMissing = index
			}
			continue
		}
		if err != nil {
			return Report{}, fmt.Errorf("check frame %d: %w", index, err)
		}

		report.Present++
		if path == "" {
			report.EmptyPaths++
		}
	}

	return report, nil
}
