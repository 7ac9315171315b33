package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fiado venda a crédito. O estoque sai na criação; a receita só é reconhecida no pagamento,
// quando uma StockMovement de SAIDA é criada e vinculada em MovementID.
type Fiado struct {
	ID         string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Customer   string
	Paid       bool
	CreatedAt  time.Time
	PaidAt     *time.Time
	MovementID *string
}
