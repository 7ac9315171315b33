package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// ProductFilter filtros de listagem de produtos.
type ProductFilter struct {
	IncludeInactive bool
}

// ProductRepository porta de persistência de Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloqueia a linha do produto até o fim da transação (SELECT ... FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// Update altera os campos cadastrais. Não altera a quantidade.
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity grava a nova quantidade (usado só pelas operações de estoque).
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Product, error)
	// SearchByNameOrTag busca produtos ativos cujo nome ou alguma tag contenha term.
	SearchByNameOrTag(ctx context.Context, term string) ([]*entity.Product, error)
	// ListNearExpiry produtos ativos com validade até hoje + days (inclui vencidos).
	ListNearExpiry(ctx context.Context, days int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
