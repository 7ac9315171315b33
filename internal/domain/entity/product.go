package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMinStock estoque mínimo aplicado quando o cadastro não informa um valor.
const DefaultMinStock = 5

// Product representa um produto do estoque.
// Quantity só é alterada por movimentações (entrada, saída, fiado, prejuízo).
type Product struct {
	ID            string
	Name          string
	Quantity      int
	PurchasePrice decimal.Decimal // valor de compra
	SalePrice     decimal.Decimal // valor de venda
	ExpiryDate    *time.Time      // data de validade (opcional, sem hora)
	MinStock      int
	Active        bool
	Tags          []Tag // preenchido apenas nas consultas de leitura
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TagNames devolve os nomes das tags do produto na ordem carregada.
func (p *Product) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	return names
}
