package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummaryRow vendas consolidadas de um produto no período (somente movimentações SAIDA).
type SalesSummaryRow struct {
	ProductID       string
	ProductName     string
	QuantitySold    int
	Revenue         decimal.Decimal // quantidade × preço unitário da movimentação (ou preço de venda atual)
	EstimatedProfit decimal.Decimal // receita − quantidade × valor de compra
}

// ReportRepository consultas de relatório de vendas (read-only).
type ReportRepository interface {
	// GetSalesSummary agrupa por produto, ordenado por quantidade vendida desc.
	GetSalesSummary(ctx context.Context, start, end time.Time) ([]SalesSummaryRow, error)
}
