package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySales faturamento e lucro de um dia.
type DailySales struct {
	Date    time.Time
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// ProductSales vendas acumuladas de um produto.
type ProductSales struct {
	ProductID    string
	ProductName  string
	QuantitySold int
	Revenue      decimal.Decimal
	Profit       decimal.Decimal
}

// TagPerformance desempenho de vendas agregado por tag.
type TagPerformance struct {
	Tag          string
	Products     int
	QuantitySold int
	Revenue      decimal.Decimal
	Profit       decimal.Decimal
}

// StockValue valor do estoque ativo.
type StockValue struct {
	CostValue decimal.Decimal // Σ quantidade × valor de compra
	SaleValue decimal.Decimal // Σ quantidade × valor de venda
	Products  int
	Items     int
}

// LowStockItem produto ativo abaixo do estoque mínimo.
type LowStockItem struct {
	ProductID     string
	ProductName   string
	Quantity      int
	MinStock      int
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
}

// TurnoverItem rotatividade de um produto nos últimos N dias.
type TurnoverItem struct {
	ProductID   string
	ProductName string
	Movements   int
	Exits       int
	Entries     int
}

// MarginItem preços cadastrais e lucro realizado de um produto.
type MarginItem struct {
	ProductID     string
	ProductName   string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	QuantitySold  int
	TotalProfit   decimal.Decimal
}

// ExpiringItem produto com validade dentro da janela (ou já vencido).
type ExpiringItem struct {
	ProductID    string
	ProductName  string
	ExpiryDate   time.Time
	Quantity     int
	SalePrice    decimal.Decimal
	DaysToExpire int
}

// InactiveItem produto ativo sem movimentação há DaysIdle dias ("encalhado").
type InactiveItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	CreatedAt   time.Time
	SalePrice   decimal.Decimal
	DaysIdle    int
}

// MonthlySummary vendas de um mês (YYYY-MM).
type MonthlySummary struct {
	Month        string
	QuantitySold int
	Revenue      decimal.Decimal
	Profit       decimal.Decimal
}

// CashFlowDay abertura/fechamento do caixa de um dia e as vendas registradas nele.
type CashFlowDay struct {
	Date          time.Time
	OpeningAmount decimal.Decimal
	ClosingAmount *decimal.Decimal
	Sales         decimal.Decimal
}

// Totals estatísticas gerais.
type Totals struct {
	Products      int
	Items         int
	Sales         int
	DaysWithSales int
}

// FiadosSummary fiados em aberto e pagos.
type FiadosSummary struct {
	OpenCount int
	OpenTotal decimal.Decimal
	PaidCount int
	PaidTotal decimal.Decimal
}

// PrejuizosSummary total de perdas registradas.
type PrejuizosSummary struct {
	Count int
	Total decimal.Decimal
}

// PrejuizoByReason perdas agrupadas por motivo.
type PrejuizoByReason struct {
	Reason string
	Count  int
	Total  decimal.Decimal
}

// AnalyticsRepository consultas analíticas de leitura. Vendas = movimentações SAIDA;
// fiados em aberto não aparecem até serem pagos.
type AnalyticsRepository interface {
	GetSalesByPeriod(ctx context.Context, start, end time.Time) ([]DailySales, error)
	GetTopProducts(ctx context.Context, limit int) ([]ProductSales, error)
	GetTagPerformance(ctx context.Context) ([]TagPerformance, error)
	GetStockValue(ctx context.Context) (*StockValue, error)
	GetLowStockProducts(ctx context.Context) ([]LowStockItem, error)
	GetTurnover(ctx context.Context, days int) ([]TurnoverItem, error)
	GetProfitMargins(ctx context.Context) ([]MarginItem, error)
	GetExpiringProducts(ctx context.Context, days int) ([]ExpiringItem, error)
	GetInactiveProducts(ctx context.Context, days int) ([]InactiveItem, error)
	GetMonthlySummary(ctx context.Context, months int) ([]MonthlySummary, error)
	GetCashFlow(ctx context.Context, start, end time.Time) ([]CashFlowDay, error)
	GetTotals(ctx context.Context) (*Totals, error)
	GetFiadosSummary(ctx context.Context) (*FiadosSummary, error)
	GetPrejuizosSummary(ctx context.Context) (*PrejuizosSummary, error)
	GetPrejuizosByReason(ctx context.Context, limit int) ([]PrejuizoByReason, error)
}
