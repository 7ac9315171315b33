package dto

import "github.com/shopspring/decimal"

// SalesReportRow linha do relatório de vendas por produto.
type SalesReportRow struct {
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	QuantitySold    int             `json:"quantity_sold"`
	Revenue         decimal.Decimal `json:"revenue"`
	EstimatedProfit decimal.Decimal `json:"estimated_profit"`
}

// TopProductDTO produto mais vendido do período.
type TopProductDTO struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	QuantitySold int    `json:"quantity_sold"`
}

// SalesTotalsDTO totais do relatório.
type SalesTotalsDTO struct {
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// SalesReportDTO resposta de GET /api/reports/sales.
type SalesReportDTO struct {
	Success    bool             `json:"success"`
	Period     PeriodDTO        `json:"period"`
	Rows       []SalesReportRow `json:"rows"`
	TopProduct *TopProductDTO   `json:"top_product"`
	Totals     SalesTotalsDTO   `json:"totals"`
}
