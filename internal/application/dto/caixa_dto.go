package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenCaixaRequest body de POST /api/caixa/open.
type OpenCaixaRequest struct {
	OpeningAmount decimal.Decimal `json:"opening_amount"`
}

// CloseCaixaRequest body de POST /api/caixa/:id/close.
type CloseCaixaRequest struct {
	ClosingAmount decimal.Decimal `json:"closing_amount"`
}

// CaixaResponse sessão de caixa.
type CaixaResponse struct {
	ID            string           `json:"id"`
	Date          string           `json:"date"`
	OpeningAmount decimal.Decimal  `json:"opening_amount"`
	ClosingAmount *decimal.Decimal `json:"closing_amount"`
	Status        string           `json:"status"`
	OpenedAt      time.Time        `json:"opened_at"`
	ClosedAt      *time.Time       `json:"closed_at"`
}

// CloseCaixaResponse resultado do fechamento; Variance = fechamento − abertura (não persistido).
type CloseCaixaResponse struct {
	Success       bool            `json:"success"`
	Caixa         CaixaResponse   `json:"caixa"`
	OpeningAmount decimal.Decimal `json:"opening_amount"`
	ClosingAmount decimal.Decimal `json:"closing_amount"`
	Variance      decimal.Decimal `json:"variance"`
}
