package usecase

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// CatalogTxRunner executa o cadastro de produto (produto, estoque inicial e tags) numa única transação.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		productTagRepo repository.ProductTagRepository,
	) error) error
}
