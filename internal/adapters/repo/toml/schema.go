package toml

import (
	"fmt"

	"github.com/bnema/framecast/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int              `toml:"version"`
	Sequences []sequenceSchema `toml:"sequences"`
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported sequences schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sequenceSchema struct {
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	Dir       string `toml:"dir"`
	FPS       int    `toml:"fps"`
	LastFrame int    `toml:"last_frame"`
}

func (s sequenceSchema) toDomain() domain.Sequence {
	seq := domain.Sequence{
		ID:        domain.SequenceID(s.ID),
		Name:      s.Name,
		Dir:       s.Dir,
		FPS:       s.FPS,
		LastFrame: s.LastFrame,
	}

	if seq.Dir == "" {
		seq.Dir = domain.DefaultDir
	}
	if seq.FPS == 0 {
		seq.FPS = domain.DefaultFPS
	}
	if seq.LastFrame == 0 {
		seq.LastFrame = domain.DefaultLastFrame
	}

	return seq
}
