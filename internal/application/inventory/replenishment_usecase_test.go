package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

func TestGenerateReplenishmentList(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		lowStock: []repository.LowStockItem{
			{ProductID: "a", ProductName: "Arroz", Quantity: 1, MinStock: 5, PurchasePrice: decimal.RequireFromString("20")},
			{ProductID: "b", ProductName: "Feijão", Quantity: 3, MinStock: 5, PurchasePrice: decimal.RequireFromString("8.50")},
			{ProductID: "c", ProductName: "Sal", Quantity: 0, MinStock: 4, PurchasePrice: decimal.RequireFromString("2")},
		},
		turnover: []repository.TurnoverItem{
			{ProductID: "b", Exits: 40},
			{ProductID: "a", Exits: 10},
		},
	}
	uc := inventory.NewReplenishmentUseCase(repo)

	list, err := uc.GenerateReplenishmentList(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "b", list[0].ProductID)
	assert.Equal(t, 1, list[0].Priority)
	assert.Equal(t, 10, list[0].TargetStock)
	assert.Equal(t, 7, list[0].SuggestedOrderQty)
	assert.True(t, list[0].EstimatedOrderCost.Equal(decimal.RequireFromString("59.50")))
	assert.Equal(t, "a", list[1].ProductID)
	// sem vendas recentes: fica por último, com déficit 4
	assert.Equal(t, "c", list[2].ProductID)
	assert.Equal(t, 0, list[2].UnitsSoldLast30)
	assert.Equal(t, 8, list[2].SuggestedOrderQty)
	assert.Equal(t, 3, list[2].Priority)
}

func TestGenerateReplenishmentList_Empty(t *testing.T) {
	uc := inventory.NewReplenishmentUseCase(&fakeAnalyticsRepo{})

	list, err := uc.GenerateReplenishmentList(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
