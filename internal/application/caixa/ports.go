package caixa

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// TxRunner executa fn numa transação de BD com o repositório de caixa atado a ela.
type TxRunner interface {
	RunCaixa(ctx context.Context, fn func(caixaRepo repository.CaixaRepository) error) error
}
