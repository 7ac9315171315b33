package inventory

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando repositórios atados a essa tx.
// Garante que a alteração de quantidade e o registro no livro (movimentação, fiado ou prejuízo)
// sejam gravados juntos ou não sejam gravados.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		fiadoRepo repository.FiadoRepository,
		prejuizoRepo repository.PrejuizoRepository,
	) error) error
}
