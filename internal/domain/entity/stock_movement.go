package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovementTypeEntry = "ENTRADA"
	MovementTypeExit  = "SAIDA"
)

// StockMovement registro imutável do livro de movimentações.
// Vendas fiado só entram aqui quando o fiado é pago.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // ENTRADA | SAIDA
	Quantity  int    // sempre positivo; o sentido vem de Type
	UnitPrice *decimal.Decimal
	Note      string
	CreatedAt time.Time
}

// IsValidMovementType indica se t é um tipo de movimentação conhecido.
func IsValidMovementType(t string) bool {
	return t == MovementTypeEntry || t == MovementTypeExit
}
