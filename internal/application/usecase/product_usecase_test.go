package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/inventory"
)

var today = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func newProductUseCase(c *catalog) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(&catalogTx{c}, &productRepo{c}, &tagRepo{c}, &productTagRepo{c}, 30).
		WithClock(func() time.Time { return today })
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestProductCreate_InitialStockRecordsEntry(t *testing.T) {
	c := newCatalog()
	c.tags["t1"] = &entity.Tag{ID: "t1", Name: "Bebidas"}
	uc := newProductUseCase(c)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "  Refrigerante 2L ",
		Quantity:      24,
		PurchasePrice: decimal.RequireFromString("5.20"),
		SalePrice:     decimal.RequireFromString("9.00"),
		ExpiryDate:    strPtr("2024-12-31"),
		TagIDs:        []string{"t1", "t1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Refrigerante 2L", out.Name)
	assert.Equal(t, 24, out.Quantity)
	assert.Equal(t, entity.DefaultMinStock, out.MinStock)
	assert.True(t, out.Active)
	assert.Equal(t, []string{"Bebidas"}, out.Tags)
	require.NotNil(t, out.ExpiryDate)
	assert.Equal(t, "2024-12-31", *out.ExpiryDate)

	require.Len(t, c.movements, 1)
	mov := c.movements[0]
	assert.Equal(t, entity.MovementTypeEntry, mov.Type)
	assert.Equal(t, 24, mov.Quantity)
	assert.Equal(t, "Estoque inicial", mov.Note)
	require.NotNil(t, mov.UnitPrice)
	assert.True(t, mov.UnitPrice.Equal(decimal.RequireFromString("5.20")))
}

func TestProductCreate_ZeroStockNoMovement(t *testing.T) {
	c := newCatalog()
	uc := newProductUseCase(c)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Sal", MinStock: intPtr(0)})

	require.NoError(t, err)
	assert.Equal(t, 0, out.MinStock)
	assert.Empty(t, c.movements)
}

func TestProductCreate_Validation(t *testing.T) {
	c := newCatalog()
	uc := newProductUseCase(c)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateProductRequest
		err  error
	}{
		{"nome vazio", dto.CreateProductRequest{Name: "  "}, domain.ErrInvalidInput},
		{"quantidade negativa", dto.CreateProductRequest{Name: "A", Quantity: -1}, domain.ErrInvalidQuantity},
		{"preço negativo", dto.CreateProductRequest{Name: "A", SalePrice: decimal.NewFromInt(-1)}, domain.ErrInvalidAmount},
		{"mínimo negativo", dto.CreateProductRequest{Name: "A", MinStock: intPtr(-2)}, domain.ErrInvalidInput},
		{"validade inválida", dto.CreateProductRequest{Name: "A", ExpiryDate: strPtr("31/12/2024")}, domain.ErrInvalidInput},
		{"tag inexistente", dto.CreateProductRequest{Name: "A", TagIDs: []string{"nope"}}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, tc.err)
		})
	}
	assert.Empty(t, c.products)
}

func TestProductUpdate_DoesNotTouchQuantity(t *testing.T) {
	c := newCatalog()
	c.tags["t1"] = &entity.Tag{ID: "t1", Name: "Bebidas"}
	c.tags["t2"] = &entity.Tag{ID: "t2", Name: "Promoção"}
	uc := newProductUseCase(c)
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Suco", Quantity: 8, ExpiryDate: strPtr("2024-07-01"), TagIDs: []string{"t1"}})
	require.NoError(t, err)

	price := decimal.RequireFromString("7.50")
	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{
		Name:            strPtr("Suco Uva"),
		SalePrice:       &price,
		ClearExpiryDate: true,
		TagIDs:          []string{"t2"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Suco Uva", out.Name)
	assert.Equal(t, 8, out.Quantity)
	assert.True(t, out.SalePrice.Equal(price))
	assert.Nil(t, out.ExpiryDate)
	assert.Equal(t, []string{"Promoção"}, out.Tags)
}

func TestProductUpdate_NilTagsKeepsSet(t *testing.T) {
	c := newCatalog()
	c.tags["t1"] = &entity.Tag{ID: "t1", Name: "Bebidas"}
	uc := newProductUseCase(c)
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Água", TagIDs: []string{"t1"}})
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{MinStock: intPtr(12)})

	require.NoError(t, err)
	assert.Equal(t, 12, out.MinStock)
	assert.Equal(t, []string{"Bebidas"}, out.Tags)
}

func TestProductUpdate_NotFound(t *testing.T) {
	uc := newProductUseCase(newCatalog())

	_, err := uc.Update(context.Background(), "x", dto.UpdateProductRequest{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductListAndDeactivate(t *testing.T) {
	c := newCatalog()
	uc := newProductUseCase(c)
	ctx := context.Background()
	a, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Arroz"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Biscoito"})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(ctx, a.ID))

	active, err := uc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Biscoito", active[0].Name)

	all, err := uc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.ErrorIs(t, uc.Deactivate(ctx, "x"), domain.ErrNotFound)
}

func TestProductSearch_ByNameOrTag(t *testing.T) {
	c := newCatalog()
	c.tags["t1"] = &entity.Tag{ID: "t1", Name: "Limpeza"}
	uc := newProductUseCase(c)
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Detergente", TagIDs: []string{"t1"}})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Leite"})
	require.NoError(t, err)

	byTag, err := uc.Search(ctx, "limp")
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "Detergente", byTag[0].Name)

	byName, err := uc.Search(ctx, "lei")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Leite", byName[0].Name)

	all, err := uc.Search(ctx, " ")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProductDelete(t *testing.T) {
	c := newCatalog()
	uc := newProductUseCase(c)
	ctx := context.Background()
	p, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Vela"})
	require.NoError(t, err)
	used, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Fósforo", Quantity: 3})
	require.NoError(t, err)
	c.referenced[used.ID] = true

	require.NoError(t, uc.Delete(ctx, p.ID))
	assert.ErrorIs(t, uc.Delete(ctx, p.ID), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, used.ID), domain.ErrConflict)
}

func TestProductAlerts(t *testing.T) {
	c := newCatalog()
	uc := newProductUseCase(c)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Ok", Quantity: 10, ExpiryDate: strPtr("2025-01-01")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Baixo", Quantity: 2})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Vencido", Quantity: 10, ExpiryDate: strPtr("2024-05-31")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Quase", Quantity: 1, ExpiryDate: strPtr("2024-06-20")})
	require.NoError(t, err)

	alerts, err := uc.Alerts(ctx, nil)
	require.NoError(t, err)

	byName := map[string]dto.ProductAlertResponse{}
	for _, a := range alerts {
		byName[a.Name] = a
	}
	require.Len(t, byName, 3)
	assert.Equal(t, []string{inventory.AlertLowStock}, byName["Baixo"].Alerts)
	assert.Equal(t, []string{inventory.AlertExpired}, byName["Vencido"].Alerts)
	assert.Equal(t, []string{inventory.AlertLowStock, inventory.AlertNearExpiry}, byName["Quase"].Alerts)
	require.NotNil(t, byName["Quase"].DaysToExpire)
	assert.Equal(t, 19, *byName["Quase"].DaysToExpire)

	// janela menor: "Quase" continua apenas como estoque baixo
	narrow, err := uc.Alerts(ctx, intPtr(7))
	require.NoError(t, err)
	for _, a := range narrow {
		if a.Name == "Quase" {
			assert.Equal(t, []string{inventory.AlertLowStock}, a.Alerts)
		}
	}

	_, err = uc.Alerts(ctx, intPtr(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductTags(t *testing.T) {
	c := newCatalog()
	c.tags["t1"] = &entity.Tag{ID: "t1", Name: "A"}
	c.tags["t2"] = &entity.Tag{ID: "t2", Name: "B"}
	uc := newProductUseCase(c)
	ctx := context.Background()
	p, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Pão"})
	require.NoError(t, err)

	require.NoError(t, uc.AddTag(ctx, p.ID, "t1"))
	require.NoError(t, uc.AddTag(ctx, p.ID, "t1"))
	tags, err := uc.ListTags(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	tags, err = uc.SetTags(ctx, p.ID, []string{"t2", "t1"})
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	require.NoError(t, uc.RemoveTag(ctx, p.ID, "t1"))
	tags, err = uc.ListTags(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "B", tags[0].Name)

	assert.ErrorIs(t, uc.AddTag(ctx, p.ID, "nope"), domain.ErrNotFound)
	assert.ErrorIs(t, uc.AddTag(ctx, "nope", "t1"), domain.ErrNotFound)
}
