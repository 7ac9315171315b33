package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// TagRepository porta de persistência de Tag.
type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	GetByID(ctx context.Context, id string) (*entity.Tag, error)
	GetByName(ctx context.Context, name string) (*entity.Tag, error)
	List(ctx context.Context) ([]*entity.Tag, error)
	Delete(ctx context.Context, id string) error
}

// ProductTagRepository associação N:N produto/tag. Add é idempotente.
type ProductTagRepository interface {
	Add(ctx context.Context, productID, tagID string) error
	Remove(ctx context.Context, productID, tagID string) error
	ListTagsByProduct(ctx context.Context, productID string) ([]*entity.Tag, error)
	ListProductsByTag(ctx context.Context, tagID string) ([]*entity.Product, error)
	// ReplaceProductTags substitui o conjunto de tags do produto.
	ReplaceProductTags(ctx context.Context, productID string, tagIDs []string) error
}
