package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// CaixaRepository persistência das sessões de caixa.
type CaixaRepository interface {
	Create(ctx context.Context, caixa *entity.Caixa) error
	GetByID(ctx context.Context, id string) (*entity.Caixa, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Caixa, error)
	FindByDate(ctx context.Context, date time.Time) (*entity.Caixa, error)
	FindOpen(ctx context.Context) (*entity.Caixa, error)
	// Close grava status, valor e data de fechamento de caixa.
	Close(ctx context.Context, caixa *entity.Caixa) error
	List(ctx context.Context) ([]*entity.Caixa, error)
}
