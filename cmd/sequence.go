package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/framecast/internal/domain"
	"github.com/spf13/cobra"
)

type sequenceFlags struct {
	sequenceID string
	dir        string
	fps        int
	lastFrame  int
}

func (f *sequenceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sequenceID, "sequence", "", "sequence id from the manifest (overrides the ad-hoc flags)")
	cmd.Flags().StringVar(&f.dir, "dir", domain.DefaultDir, "directory of numbered .svg frame assets")
	cmd.Flags().IntVar(&f.fps, "fps", domain.DefaultFPS, "target frames per second")
	cmd.Flags().IntVar(&f.lastFrame, "last-frame", domain.DefaultLastFrame, "index of the final frame asset")
}

// resolveSequence prefers a manifest entry when --sequence is given and
// otherwise builds an ad-hoc sequence from the flags.
func resolveSequence(ctx context.Context, a *app, flags sequenceFlags) (domain.Sequence, error) {
	if flags.sequenceID != "" {
		seq, err := a.sequences.GetByID(ctx, domain.SequenceID(flags.sequenceID))
		if err != nil {
			return domain.Sequence{}, fmt.Errorf("load sequence %q: %w", flags.sequenceID, err)
		}
		return seq, nil
	}

	seq := domain.Sequence{
		ID:        "adhoc",
		Dir:       flags.dir,
		FPS:       flags.fps,
		LastFrame: flags.lastFrame,
	}
	if err := seq.Validate(); err != nil {
		return domain.Sequence{}, err
	}

	return seq, nil
}
