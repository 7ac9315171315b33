package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para cadastrar um produto.
// Quantity é o estoque inicial; quando > 0 gera uma ENTRADA "Estoque inicial".
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	ExpiryDate    *string         `json:"expiry_date,omitempty"` // YYYY-MM-DD
	MinStock      *int            `json:"min_stock,omitempty"`   // padrão 5
	TagIDs        []string        `json:"tag_ids,omitempty"`
}

// UpdateProductRequest entrada para atualizar um produto. Quantidade não entra aqui (só via movimentações).
// TagIDs != nil substitui o conjunto de tags.
type UpdateProductRequest struct {
	Name            *string          `json:"name"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price"`
	SalePrice       *decimal.Decimal `json:"sale_price"`
	ExpiryDate      *string          `json:"expiry_date"`
	ClearExpiryDate bool             `json:"clear_expiry_date"`
	MinStock        *int             `json:"min_stock"`
	Active          *bool            `json:"active"`
	TagIDs          []string         `json:"tag_ids"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	ExpiryDate    *string         `json:"expiry_date"`
	MinStock      int             `json:"min_stock"`
	Active        bool            `json:"active"`
	Tags          []string        `json:"tags"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductAlertResponse produto com os alertas calculados no momento da leitura.
type ProductAlertResponse struct {
	ProductResponse
	Alerts       []string `json:"alerts"`
	DaysToExpire *int     `json:"days_to_expire,omitempty"`
}

// SetProductTagsRequest substitui as tags de um produto.
type SetProductTagsRequest struct {
	TagIDs []string `json:"tag_ids"`
}
