package ports

import (
	"context"

	"github.com/bnema/framecast/internal/domain"
)

type SequenceRepository interface {
	GetByID(ctx context.Context, id domain.SequenceID) (domain.Sequence, error)
	List(ctx context.Context) ([]domain.Sequence, error)
}
