package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/framecast/internal/domain"
	"github.com/bnema/framecast/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName        = "config"
	configType        = "toml"
	sequencesPathKey  = "sequences.path"
	manifestConfigDir = ".framecast"
	manifestFile      = "sequences.toml"
)

// Repository resolves sequences from a hand-authored TOML manifest. The
// manifest is read-only from the core's point of view: assets and their
// playback parameters pre-exist and are never mutated by a session.
type Repository struct {
	manifestPath string
}

var _ ports.SequenceRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, manifestConfigDir, manifestFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, manifestConfigDir))
	cfg.SetDefault(sequencesPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	manifestPath := cfg.GetString(sequencesPathKey)
	if manifestPath == "" {
		return nil, errors.New("sequences path is empty")
	}

	return &Repository{manifestPath: filepath.Clean(manifestPath)}, nil
}

func (r *Repository) GetByID(ctx context.Context, id domain.SequenceID) (domain.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return domain.Sequence{}, err
	}

	file, err := r.readSchema()
	if err != nil {
		return domain.Sequence{}, err
	}

	for _, seq := range file.Sequences {
		if domain.SequenceID(seq.ID) == id {
			return seq.toDomain(), nil
		}
	}

	return domain.Sequence{}, fmt.Errorf("sequence %q: %w", id, domain.ErrSequenceNotFound)
}

func (r *Repository) List(ctx context.Context) ([]domain.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	sequences := make([]domain.Sequence, 0, len(file.Sequences))
	for _, seq := range file.Sequences {
		sequences = append(sequences, seq.toDomain())
	}

	return sequences, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read sequences manifest: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode sequences manifest: %w", err)
	}

	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}

	return file, nil
}
