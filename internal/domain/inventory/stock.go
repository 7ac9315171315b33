package inventory

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// MaxQuantity maior estoque representável; entradas só falham ao estourar o inteiro.
const MaxQuantity = math.MaxInt

// LineTotal valor total de uma linha: preço unitário × quantidade.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// CheckWithdrawal valida uma baixa (saída, fiado ou prejuízo) contra o estoque atual.
func CheckWithdrawal(p *entity.Product, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if p.Quantity < quantity {
		return domain.ErrInsufficientStock
	}
	return nil
}

// CheckEntry valida uma entrada. Sem teto de negócio; rejeita apenas o estouro de MaxQuantity.
func CheckEntry(current, quantity int) error {
	if quantity <= 0 || quantity > MaxQuantity-current {
		return domain.ErrInvalidQuantity
	}
	return nil
}
