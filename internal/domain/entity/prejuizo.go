package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Motivos de prejuízo oferecidos ao operador.
const (
	LossReasonBroken = "Quebrado"
	LossReasonLeak   = "Vazamento"
	LossReasonDefect = "Defeito"
	LossReasonOther  = "Outro"
)

// LossReasons lista os motivos na ordem de exibição.
var LossReasons = []string{LossReasonBroken, LossReasonLeak, LossReasonDefect, LossReasonOther}

// Prejuizo baixa de estoque por perda (quebra, vencimento, defeito...). Livro separado das vendas.
type Prejuizo struct {
	ID         string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Reason     string
	Note       string
	CreatedAt  time.Time
}
