package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados do caixa. Sem registro para o dia = caixa nunca aberto naquele dia.
const (
	CaixaStatusOpen   = "ABERTO"
	CaixaStatusClosed = "FECHADO"
)

// Caixa sessão diária de caixa: no máximo um por data e um ABERTO no sistema todo.
type Caixa struct {
	ID            string
	Date          time.Time // dia civil (00:00, sem fuso relevante)
	OpeningAmount decimal.Decimal
	ClosingAmount *decimal.Decimal
	Status        string
	OpenedAt      time.Time
	ClosedAt      *time.Time
}

// IsOpen indica se o caixa está ABERTO.
func (c *Caixa) IsOpen() bool { return c.Status == CaixaStatusOpen }

// Variance diferença fechamento − abertura; zero enquanto o caixa não foi fechado.
func (c *Caixa) Variance() decimal.Decimal {
	if c.ClosingAmount == nil {
		return decimal.Zero
	}
	return c.ClosingAmount.Sub(c.OpeningAmount)
}
