package dto

import (
	"github.com/shopspring/decimal"
)

// ── Séries e rankings de vendas ───────────────────────────────────────────────

// ChartSeriesDTO série para gráficos (datas × valores).
type ChartSeriesDTO struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}

// SalesByPeriodDTO faturamento e lucro diários no período.
type SalesByPeriodDTO struct {
	Period  PeriodDTO       `json:"period"`
	Revenue ChartSeriesDTO  `json:"revenue"`
	Profit  ChartSeriesDTO  `json:"profit"`
	Total   decimal.Decimal `json:"total"`
}

// ProductSalesDTO vendas acumuladas de um produto.
type ProductSalesDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
	Profit       decimal.Decimal `json:"profit"`
}

// TagPerformanceDTO desempenho por tag (categoria).
type TagPerformanceDTO struct {
	Tag          string          `json:"tag"`
	Products     int             `json:"products"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
	Profit       decimal.Decimal `json:"profit"`
}

// MonthlySummaryDTO vendas de um mês.
type MonthlySummaryDTO struct {
	Month        string          `json:"month"` // YYYY-MM
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
	Profit       decimal.Decimal `json:"profit"`
}

// ── Estoque ───────────────────────────────────────────────────────────────────

// StockMetricsDTO valor do estoque ativo.
type StockMetricsDTO struct {
	CostValue decimal.Decimal `json:"cost_value"`
	SaleValue decimal.Decimal `json:"sale_value"`
	Products  int             `json:"products"`
	Items     int             `json:"items"`
}

// LowStockDTO produto abaixo do mínimo.
type LowStockDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	MinStock    int             `json:"min_stock"`
	SalePrice   decimal.Decimal `json:"sale_price"`
}

// TurnoverDTO rotatividade nos últimos N dias.
type TurnoverDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Movements   int    `json:"movements"`
	Exits       int    `json:"exits"`
	Entries     int    `json:"entries"`
}

// MarginDTO margem por produto.
type MarginDTO struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	MarginPct     decimal.Decimal `json:"margin_pct"`
	QuantitySold  int             `json:"quantity_sold"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
}

// ExpiringDTO produto próximo do vencimento.
type ExpiringDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ExpiryDate   string          `json:"expiry_date"`
	Quantity     int             `json:"quantity"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	DaysToExpire int             `json:"days_to_expire"`
}

// InactiveDTO produto encalhado.
type InactiveDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	CreatedAt   string          `json:"created_at"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	DaysIdle    int             `json:"days_idle"`
}

// ── Caixa, fiados e prejuízos ─────────────────────────────────────────────────

// CashFlowDTO um dia de caixa com as vendas do dia.
type CashFlowDTO struct {
	Date          string           `json:"date"`
	OpeningAmount decimal.Decimal  `json:"opening_amount"`
	ClosingAmount *decimal.Decimal `json:"closing_amount"`
	Sales         decimal.Decimal  `json:"sales"`
}

// FiadosSummaryDTO fiados em aberto e pagos.
type FiadosSummaryDTO struct {
	OpenCount int             `json:"open_count"`
	OpenTotal decimal.Decimal `json:"open_total"`
	PaidCount int             `json:"paid_count"`
	PaidTotal decimal.Decimal `json:"paid_total"`
}

// PrejuizosSummaryDTO total de perdas.
type PrejuizosSummaryDTO struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// PrejuizoByReasonDTO perdas por motivo.
type PrejuizoByReasonDTO struct {
	Reason string          `json:"reason"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// StatisticsDTO estatísticas gerais.
type StatisticsDTO struct {
	Products      int `json:"products"`
	Items         int `json:"items"`
	Sales         int `json:"sales"`
	DaysWithSales int `json:"days_with_sales"`
}
