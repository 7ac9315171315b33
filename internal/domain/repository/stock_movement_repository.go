package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// MovementFilter filtros do livro de movimentações. Campos zero não filtram.
type MovementFilter struct {
	ProductID string
	Type      string
	From, To  *time.Time // dias civis inclusivos
	Limit     int
	Offset    int
}

// StockMovementRepository livro append-only de movimentações.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	List(ctx context.Context, filter MovementFilter) ([]*entity.StockMovement, error)
}
