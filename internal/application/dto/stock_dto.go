package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body de POST /api/stock/movements (tipo ENTRADA ou SAIDA).
type RegisterMovementRequest struct {
	ProductID string           `json:"product_id"`
	Type      string           `json:"type"`
	Quantity  int              `json:"quantity"`
	Note      string           `json:"note"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	IsCredit  bool             `json:"is_credit"`
	Customer  string           `json:"customer,omitempty"`
}

// StockEntryRequest body de POST /api/stock/entries.
type StockEntryRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Note      string           `json:"note"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// StockExitRequest body de POST /api/stock/exits.
type StockExitRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note"`
	IsCredit  bool   `json:"is_credit"`
	Customer  string `json:"customer,omitempty"`
}

// RegisterLossRequest body de POST /api/stock/losses.
type RegisterLossRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Note      string `json:"note"`
}

// MovementResponse movimentação do livro.
type MovementResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	Type      string           `json:"type"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Note      string           `json:"note"`
	CreatedAt time.Time        `json:"created_at"`
}

// FiadoResponse venda fiado.
type FiadoResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Customer   string          `json:"customer"`
	Paid       bool            `json:"paid"`
	CreatedAt  time.Time       `json:"created_at"`
	PaidAt     *time.Time      `json:"paid_at"`
	MovementID *string         `json:"movement_id"`
}

// PrejuizoResponse registro de perda.
type PrejuizoResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Reason     string          `json:"reason"`
	Note       string          `json:"note"`
	CreatedAt  time.Time       `json:"created_at"`
}

// StockOperationResponse resposta uniforme das operações de estoque.
type StockOperationResponse struct {
	Success   bool              `json:"success"`
	ProductID string            `json:"product_id"`
	Quantity  int               `json:"quantity"`
	Movement  *MovementResponse `json:"movement,omitempty"`
	Fiado     *FiadoResponse    `json:"fiado,omitempty"`
	Prejuizo  *PrejuizoResponse `json:"prejuizo,omitempty"`
}

// ReplenishmentSuggestionDTO sugestão de reposição para um produto abaixo do estoque mínimo.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"product_id"`
	ProductName        string          `json:"product_name"`
	CurrentStock       int             `json:"current_stock"`
	MinStock           int             `json:"min_stock"`
	TargetStock        int             `json:"target_stock"`        // 2 × estoque mínimo
	SuggestedOrderQty  int             `json:"suggested_order_qty"` // TargetStock − CurrentStock
	UnitCost           decimal.Decimal `json:"unit_cost"`           // valor de compra
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"`
	UnitsSoldLast30    int             `json:"units_sold_last_30d"`
	Priority           int             `json:"priority"` // 1 = mais urgente
}
