package domain

import (
	"fmt"
	"time"
)

type SequenceID string

const (
	DefaultFPS       = 24
	DefaultLastFrame = 5258
	DefaultDir       = "svgs"
)

// Sequence describes one pre-rendered animation: a directory of numbered
// SVG assets played back at a fixed frame rate. Assets are 1-indexed,
// dense and contiguous up to LastFrame.
type Sequence struct {
	ID        SequenceID
	Name      string
	Dir       string
	FPS       int
	LastFrame int
}

// SPF is the nominal inter-emission interval (seconds per frame).
func (s Sequence) SPF() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

func (s Sequence) Validate() error {
	if s.Dir == "" {
		return fmt.Errorf("sequence %q has no asset directory", s.ID)
	}
	if s.FPS <= 0 {
		return fmt.Errorf("sequence %q has non-positive fps %d", s.ID, s.FPS)
	}
	if s.LastFrame < 1 {
		return fmt.Errorf("sequence %q has last frame %d, want >= 1", s.ID, s.LastFrame)
	}
	return nil
}
