// Package analytics contém o caso de uso do painel inicial (dashboard).
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

const (
	dashboardTopProducts  = 5  // produtos no widget de mais vendidos
	dashboardExpiringDays = 30 // janela de vencimento do painel
)

// DashboardUseCase gera o resumo da tela inicial.
//
// Fonte de dados: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// WithClock substitui o relógio (testes).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

type result[T any] struct {
	val T
	err error
}

// async executa fn numa goroutine; o canal tem buffer 1 para a goroutine nunca ficar presa.
func async[T any](fn func() (T, error)) <-chan result[T] {
	ch := make(chan result[T], 1)
	go func() {
		v, err := fn()
		ch <- result[T]{v, err}
	}()
	return ch
}

// GetSummary constrói o DashboardSummaryDTO.
//
// Oito consultas em paralelo; o primeiro erro (na ordem abaixo) é devolvido:
//  1. GetTotals             → Statistics
//  2. GetStockValue         → Stock
//  3. GetTopProducts(5)     → TopProducts
//  4. GetTagPerformance     → Categories
//  5. GetLowStockProducts   → LowStock
//  6. GetExpiringProducts   → Expiring (30 dias)
//  7. GetFiadosSummary      → Fiados
//  8. GetPrejuizosSummary   → Prejuizos
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	totalsCh := async(func() (*repository.Totals, error) { return uc.analyticsRepo.GetTotals(ctx) })
	stockCh := async(func() (*repository.StockValue, error) { return uc.analyticsRepo.GetStockValue(ctx) })
	topCh := async(func() ([]repository.ProductSales, error) {
		return uc.analyticsRepo.GetTopProducts(ctx, dashboardTopProducts)
	})
	tagsCh := async(func() ([]repository.TagPerformance, error) { return uc.analyticsRepo.GetTagPerformance(ctx) })
	lowCh := async(func() ([]repository.LowStockItem, error) { return uc.analyticsRepo.GetLowStockProducts(ctx) })
	expCh := async(func() ([]repository.ExpiringItem, error) {
		return uc.analyticsRepo.GetExpiringProducts(ctx, dashboardExpiringDays)
	})
	fiadosCh := async(func() (*repository.FiadosSummary, error) { return uc.analyticsRepo.GetFiadosSummary(ctx) })
	prejCh := async(func() (*repository.PrejuizosSummary, error) { return uc.analyticsRepo.GetPrejuizosSummary(ctx) })

	totals := <-totalsCh
	stock := <-stockCh
	top := <-topCh
	tags := <-tagsCh
	low := <-lowCh
	exp := <-expCh
	fiados := <-fiadosCh
	prej := <-prejCh

	switch {
	case totals.err != nil:
		return nil, fmt.Errorf("dashboard: estatísticas: %w", totals.err)
	case stock.err != nil:
		return nil, fmt.Errorf("dashboard: valor do estoque: %w", stock.err)
	case top.err != nil:
		return nil, fmt.Errorf("dashboard: top produtos: %w", top.err)
	case tags.err != nil:
		return nil, fmt.Errorf("dashboard: categorias: %w", tags.err)
	case low.err != nil:
		return nil, fmt.Errorf("dashboard: estoque baixo: %w", low.err)
	case exp.err != nil:
		return nil, fmt.Errorf("dashboard: vencimentos: %w", exp.err)
	case fiados.err != nil:
		return nil, fmt.Errorf("dashboard: fiados: %w", fiados.err)
	case prej.err != nil:
		return nil, fmt.Errorf("dashboard: prejuízos: %w", prej.err)
	}

	return &dto.DashboardSummaryDTO{
		Statistics:  usecase.ToStatisticsDTO(totals.val),
		Stock:       usecase.ToStockMetricsDTO(stock.val),
		TopProducts: usecase.ToProductSalesDTOs(top.val),
		Categories:  usecase.ToTagPerformanceDTOs(tags.val),
		LowStock:    usecase.ToLowStockDTOs(low.val),
		Expiring:    usecase.ToExpiringDTOs(exp.val),
		Fiados:      usecase.ToFiadosSummaryDTO(fiados.val),
		Prejuizos:   usecase.ToPrejuizosSummaryDTO(prej.val),
		DateLabel:   monthLabel(uc.now()),
	}, nil
}

// monthLabel devolve o mês por extenso, ex.: "Março 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
