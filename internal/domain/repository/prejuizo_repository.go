package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// PrejuizoRepository livro de perdas (imutável).
type PrejuizoRepository interface {
	Create(ctx context.Context, prejuizo *entity.Prejuizo) error
	// ListByPeriod lista perdas entre from e to (dias inclusivos); nil = sem limite.
	ListByPeriod(ctx context.Context, from, to *time.Time) ([]*entity.Prejuizo, error)
}
