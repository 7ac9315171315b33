package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

const (
	defaultTopN        = 10
	maxTopN            = 100
	defaultWindowDays  = 30
	maxWindowDays      = 365
	defaultMonths      = 6
	maxMonths          = 24
	defaultReasonLimit = 10
)

var hundred = decimal.NewFromInt(100)

// AnalyticsUseCase consultas analíticas de leitura. Vendas = movimentações SAIDA
// (fiados entram apenas quando pagos); perdas ficam de fora do faturamento.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewAnalyticsUseCase constrói o caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// WithClock substitui o relógio (testes).
func (uc *AnalyticsUseCase) WithClock(now func() time.Time) *AnalyticsUseCase {
	uc.now = now
	return uc
}

// SalesByPeriod séries diárias de faturamento e lucro. Datas vazias: mês corrente.
func (uc *AnalyticsUseCase) SalesByPeriod(ctx context.Context, startStr, endStr string) (*dto.SalesByPeriodDTO, error) {
	start, end, err := dto.ParsePeriod(startStr, endStr, uc.now())
	if err != nil {
		return nil, err
	}
	rows, err := uc.analyticsRepo.GetSalesByPeriod(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics: vendas por período: %w", err)
	}
	out := &dto.SalesByPeriodDTO{
		Period:  dto.NewPeriodDTO(start, end),
		Revenue: dto.ChartSeriesDTO{Labels: make([]string, 0, len(rows)), Values: make([]decimal.Decimal, 0, len(rows))},
		Profit:  dto.ChartSeriesDTO{Labels: make([]string, 0, len(rows)), Values: make([]decimal.Decimal, 0, len(rows))},
		Total:   decimal.Zero,
	}
	for _, r := range rows {
		label := r.Date.Format(dto.DateLayout)
		out.Revenue.Labels = append(out.Revenue.Labels, label)
		out.Revenue.Values = append(out.Revenue.Values, r.Revenue.Round(2))
		out.Profit.Labels = append(out.Profit.Labels, label)
		out.Profit.Values = append(out.Profit.Values, r.Profit.Round(2))
		out.Total = out.Total.Add(r.Revenue)
	}
	out.Total = out.Total.Round(2)
	return out, nil
}

// TopProducts produtos mais vendidos (quantidade).
func (uc *AnalyticsUseCase) TopProducts(ctx context.Context, limit int) ([]dto.ProductSalesDTO, error) {
	rows, err := uc.analyticsRepo.GetTopProducts(ctx, clamp(limit, defaultTopN, maxTopN))
	if err != nil {
		return nil, fmt.Errorf("analytics: top produtos: %w", err)
	}
	return ToProductSalesDTOs(rows), nil
}

// TagPerformance vendas agregadas por tag.
func (uc *AnalyticsUseCase) TagPerformance(ctx context.Context) ([]dto.TagPerformanceDTO, error) {
	rows, err := uc.analyticsRepo.GetTagPerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: desempenho por tag: %w", err)
	}
	return ToTagPerformanceDTOs(rows), nil
}

// StockValue valor do estoque a preço de compra e de venda.
func (uc *AnalyticsUseCase) StockValue(ctx context.Context) (*dto.StockMetricsDTO, error) {
	v, err := uc.analyticsRepo.GetStockValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: valor do estoque: %w", err)
	}
	out := ToStockMetricsDTO(v)
	return &out, nil
}

// LowStock produtos ativos abaixo do mínimo.
func (uc *AnalyticsUseCase) LowStock(ctx context.Context) ([]dto.LowStockDTO, error) {
	rows, err := uc.analyticsRepo.GetLowStockProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: estoque baixo: %w", err)
	}
	return ToLowStockDTOs(rows), nil
}

// Turnover rotatividade nos últimos days dias.
func (uc *AnalyticsUseCase) Turnover(ctx context.Context, days int) ([]dto.TurnoverDTO, error) {
	rows, err := uc.analyticsRepo.GetTurnover(ctx, clamp(days, defaultWindowDays, maxWindowDays))
	if err != nil {
		return nil, fmt.Errorf("analytics: rotatividade: %w", err)
	}
	out := make([]dto.TurnoverDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TurnoverDTO(r))
	}
	return out, nil
}

// ProfitMargins margem cadastral ((venda − compra) / compra) e lucro realizado por produto.
func (uc *AnalyticsUseCase) ProfitMargins(ctx context.Context) ([]dto.MarginDTO, error) {
	rows, err := uc.analyticsRepo.GetProfitMargins(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: margens: %w", err)
	}
	out := make([]dto.MarginDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MarginDTO{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			PurchasePrice: r.PurchasePrice,
			SalePrice:     r.SalePrice,
			MarginPct:     marginPct(r.PurchasePrice, r.SalePrice),
			QuantitySold:  r.QuantitySold,
			TotalProfit:   r.TotalProfit.Round(2),
		})
	}
	return out, nil
}

// Expiring produtos com validade nos próximos days dias (inclui vencidos).
func (uc *AnalyticsUseCase) Expiring(ctx context.Context, days int) ([]dto.ExpiringDTO, error) {
	rows, err := uc.analyticsRepo.GetExpiringProducts(ctx, clamp(days, defaultWindowDays, maxWindowDays))
	if err != nil {
		return nil, fmt.Errorf("analytics: vencimentos: %w", err)
	}
	return ToExpiringDTOs(rows), nil
}

// Inactive produtos encalhados: sem saída há pelo menos days dias.
func (uc *AnalyticsUseCase) Inactive(ctx context.Context, days int) ([]dto.InactiveDTO, error) {
	rows, err := uc.analyticsRepo.GetInactiveProducts(ctx, clamp(days, defaultWindowDays, maxWindowDays))
	if err != nil {
		return nil, fmt.Errorf("analytics: encalhados: %w", err)
	}
	out := make([]dto.InactiveDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InactiveDTO{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			CreatedAt:   r.CreatedAt.Format(dto.DateLayout),
			SalePrice:   r.SalePrice,
			DaysIdle:    r.DaysIdle,
		})
	}
	return out, nil
}

// MonthlySummary vendas dos últimos months meses.
func (uc *AnalyticsUseCase) MonthlySummary(ctx context.Context, months int) ([]dto.MonthlySummaryDTO, error) {
	rows, err := uc.analyticsRepo.GetMonthlySummary(ctx, clamp(months, defaultMonths, maxMonths))
	if err != nil {
		return nil, fmt.Errorf("analytics: resumo mensal: %w", err)
	}
	out := make([]dto.MonthlySummaryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlySummaryDTO{
			Month:        r.Month,
			QuantitySold: r.QuantitySold,
			Revenue:      r.Revenue.Round(2),
			Profit:       r.Profit.Round(2),
		})
	}
	return out, nil
}

// CashFlow caixas do período com as vendas de cada dia.
func (uc *AnalyticsUseCase) CashFlow(ctx context.Context, startStr, endStr string) ([]dto.CashFlowDTO, error) {
	start, end, err := dto.ParsePeriod(startStr, endStr, uc.now())
	if err != nil {
		return nil, err
	}
	rows, err := uc.analyticsRepo.GetCashFlow(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics: fluxo de caixa: %w", err)
	}
	out := make([]dto.CashFlowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CashFlowDTO{
			Date:          r.Date.Format(dto.DateLayout),
			OpeningAmount: r.OpeningAmount,
			ClosingAmount: r.ClosingAmount,
			Sales:         r.Sales.Round(2),
		})
	}
	return out, nil
}

// Statistics totais gerais.
func (uc *AnalyticsUseCase) Statistics(ctx context.Context) (*dto.StatisticsDTO, error) {
	t, err := uc.analyticsRepo.GetTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: estatísticas: %w", err)
	}
	out := ToStatisticsDTO(t)
	return &out, nil
}

// FiadosSummary fiados em aberto e pagos.
func (uc *AnalyticsUseCase) FiadosSummary(ctx context.Context) (*dto.FiadosSummaryDTO, error) {
	s, err := uc.analyticsRepo.GetFiadosSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: fiados: %w", err)
	}
	out := ToFiadosSummaryDTO(s)
	return &out, nil
}

// PrejuizosSummary total de perdas.
func (uc *AnalyticsUseCase) PrejuizosSummary(ctx context.Context) (*dto.PrejuizosSummaryDTO, error) {
	s, err := uc.analyticsRepo.GetPrejuizosSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: prejuízos: %w", err)
	}
	out := ToPrejuizosSummaryDTO(s)
	return &out, nil
}

// PrejuizosByReason perdas por motivo, maiores primeiro.
func (uc *AnalyticsUseCase) PrejuizosByReason(ctx context.Context, limit int) ([]dto.PrejuizoByReasonDTO, error) {
	rows, err := uc.analyticsRepo.GetPrejuizosByReason(ctx, clamp(limit, defaultReasonLimit, maxTopN))
	if err != nil {
		return nil, fmt.Errorf("analytics: prejuízos por motivo: %w", err)
	}
	out := make([]dto.PrejuizoByReasonDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PrejuizoByReasonDTO{Reason: r.Reason, Count: r.Count, Total: r.Total.Round(2)})
	}
	return out, nil
}

// clamp aplica o padrão quando v <= 0 e limita ao máximo.
func clamp(v, def, max int) int {
	if v <= 0 {
		return def
	}
	if v > max {
		return max
	}
	return v
}

// marginPct (venda − compra) / compra × 100, duas casas. Sem custo cadastrado devolve zero.
func marginPct(purchase, sale decimal.Decimal) decimal.Decimal {
	if purchase.IsZero() {
		return decimal.Zero
	}
	return sale.Sub(purchase).Div(purchase).Mul(hundred).Round(2)
}
