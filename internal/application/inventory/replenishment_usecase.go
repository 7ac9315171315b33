package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

const (
	replenishmentSalesWindowDays = 30
	replenishmentTargetFactor    = 2 // estoque alvo = fator × estoque mínimo
)

// ReplenishmentUseCase gera a lista de reposição: produtos abaixo do mínimo com a quantidade sugerida
// de compra, priorizados pelo giro recente.
type ReplenishmentUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewReplenishmentUseCase constrói o caso de uso de reposição.
func NewReplenishmentUseCase(analyticsRepo repository.AnalyticsRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{analyticsRepo: analyticsRepo}
}

// GenerateReplenishmentList devolve as sugestões ordenadas: maior venda nos últimos 30 dias,
// depois maior déficit em relação ao mínimo.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	// 1. Produtos abaixo do mínimo
	items, err := uc.analyticsRepo.GetLowStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}

	// 2. Giro recente (saídas) por produto; sem histórico o produto conta como zero
	turnover, _ := uc.analyticsRepo.GetTurnover(ctx, replenishmentSalesWindowDays)
	soldByID := make(map[string]int, len(turnover))
	for _, t := range turnover {
		soldByID[t.ProductID] = t.Exits
	}

	// 3. Sugestões
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(items))
	for _, item := range items {
		target := item.MinStock * replenishmentTargetFactor
		qty := target - item.Quantity
		if qty < 0 {
			qty = 0
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          item.ProductID,
			ProductName:        item.ProductName,
			CurrentStock:       item.Quantity,
			MinStock:           item.MinStock,
			TargetStock:        target,
			SuggestedOrderQty:  qty,
			UnitCost:           item.PurchasePrice,
			EstimatedOrderCost: item.PurchasePrice.Mul(decimal.NewFromInt(int64(qty))),
			UnitsSoldLast30:    soldByID[item.ProductID],
		})
	}

	// 4. Ordenar: maior giro, depois maior déficit
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.UnitsSoldLast30 != b.UnitsSoldLast30 {
			return a.UnitsSoldLast30 > b.UnitsSoldLast30
		}
		return a.MinStock-a.CurrentStock > b.MinStock-b.CurrentStock
	})

	// 5. Prioridade (1 = mais urgente)
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
