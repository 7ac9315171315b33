package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	domaininventory "github.com/jhoicas/Estoque-api/internal/domain/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var fixedNow = time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

func newStockUseCase(t *testing.T) (*inventory.StockUseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	store.addProduct(&entity.Product{
		ID:            "p1",
		Name:          "Cerveja Lata",
		Quantity:      10,
		PurchasePrice: decimal.RequireFromString("3.50"),
		SalePrice:     decimal.RequireFromString("6.00"),
		MinStock:      5,
		Active:        true,
	})
	uc := inventory.NewStockUseCase(
		&fakeTxRunner{store: store},
		&fakeMovementRepo{store},
		&fakeFiadoRepo{store},
		&fakePrejuizoRepo{store},
	).WithClock(func() time.Time { return fixedNow })
	return uc, store
}

func TestExit_InsufficientStock_LeavesStateUnchanged(t *testing.T) {
	uc, store := newStockUseCase(t)

	_, err := uc.Exit(context.Background(), inventory.ExitInput{ProductID: "p1", Quantity: 12})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, store.quantity("p1"))
	assert.Empty(t, store.movements)
}

func TestExit_Cash_DecrementsAndRecordsOneMovement(t *testing.T) {
	uc, store := newStockUseCase(t)

	res, err := uc.Exit(context.Background(), inventory.ExitInput{ProductID: "p1", Quantity: 4})

	require.NoError(t, err)
	assert.Equal(t, 6, res.Quantity)
	assert.Equal(t, 6, store.quantity("p1"))
	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementTypeExit, mov.Type)
	assert.Equal(t, 4, mov.Quantity)
	require.NotNil(t, mov.UnitPrice)
	assert.True(t, mov.UnitPrice.Equal(decimal.RequireFromString("6.00")))
	assert.Equal(t, fixedNow, mov.CreatedAt)
	assert.Nil(t, res.Fiado)
}

func TestExit_WholeStock_ReachesZero(t *testing.T) {
	uc, store := newStockUseCase(t)

	res, err := uc.Exit(context.Background(), inventory.ExitInput{ProductID: "p1", Quantity: 10})

	require.NoError(t, err)
	assert.Equal(t, 0, res.Quantity)
	assert.Equal(t, 0, store.quantity("p1"))
}

func TestEntry_AddsQuantityAndRecordsMovement(t *testing.T) {
	uc, store := newStockUseCase(t)
	ctx := context.Background()

	_, err := uc.Exit(ctx, inventory.ExitInput{ProductID: "p1", Quantity: 4})
	require.NoError(t, err)

	res, err := uc.Entry(ctx, inventory.EntryInput{ProductID: "p1", Quantity: 5, Note: " reposição "})

	require.NoError(t, err)
	assert.Equal(t, 11, res.Quantity)
	assert.Equal(t, 11, store.quantity("p1"))
	require.Len(t, store.movements, 2)
	assert.Equal(t, entity.MovementTypeEntry, res.Movement.Type)
	assert.Equal(t, "reposição", res.Movement.Note)
}

func TestEntry_OverflowRejected(t *testing.T) {
	uc, store := newStockUseCase(t)

	_, err := uc.Entry(context.Background(), inventory.EntryInput{ProductID: "p1", Quantity: domaininventory.MaxQuantity - 9})

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, 10, store.quantity("p1"))
	assert.Empty(t, store.movements)
}

func TestEntry_NegativeUnitPrice(t *testing.T) {
	uc, store := newStockUseCase(t)
	neg := decimal.NewFromInt(-1)

	_, err := uc.Entry(context.Background(), inventory.EntryInput{ProductID: "p1", Quantity: 1, UnitPrice: &neg})

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Equal(t, 10, store.quantity("p1"))
}

func TestRegisterLoss_DecrementsWithoutMovement(t *testing.T) {
	uc, store := newStockUseCase(t)
	ctx := context.Background()
	_, err := uc.Exit(ctx, inventory.ExitInput{ProductID: "p1", Quantity: 4})
	require.NoError(t, err)
	_, err = uc.Entry(ctx, inventory.EntryInput{ProductID: "p1", Quantity: 5})
	require.NoError(t, err)
	movementsBefore := len(store.movements)

	res, err := uc.RegisterLoss(ctx, inventory.LossInput{ProductID: "p1", Quantity: 2, Reason: entity.LossReasonBroken})

	require.NoError(t, err)
	assert.Equal(t, 9, store.quantity("p1"))
	assert.Len(t, store.movements, movementsBefore)
	require.Len(t, store.prejuizos, 1)
	loss := store.prejuizos[0]
	assert.Equal(t, entity.LossReasonBroken, loss.Reason)
	assert.True(t, loss.TotalPrice.Equal(loss.UnitPrice.Mul(decimal.NewFromInt(2))))
	assert.True(t, loss.TotalPrice.Equal(decimal.RequireFromString("12.00")))
	assert.Same(t, loss, res.Prejuizo)
}

func TestRegisterLoss_BlankReasonDefaultsToOther(t *testing.T) {
	uc, store := newStockUseCase(t)

	_, err := uc.RegisterLoss(context.Background(), inventory.LossInput{ProductID: "p1", Quantity: 1, Reason: "  "})

	require.NoError(t, err)
	require.Len(t, store.prejuizos, 1)
	assert.Equal(t, entity.LossReasonOther, store.prejuizos[0].Reason)
}

func TestRegisterLoss_InsufficientStock(t *testing.T) {
	uc, store := newStockUseCase(t)

	_, err := uc.RegisterLoss(context.Background(), inventory.LossInput{ProductID: "p1", Quantity: 11})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, store.quantity("p1"))
	assert.Empty(t, store.prejuizos)
}

func TestCreditSale_AndPayment(t *testing.T) {
	uc, store := newStockUseCase(t)
	ctx := context.Background()

	sale, err := uc.Exit(ctx, inventory.ExitInput{ProductID: "p1", Quantity: 3, IsCredit: true, Customer: " João "})
	require.NoError(t, err)

	// a venda fiado tira do estoque mas não entra no livro de movimentações
	assert.Equal(t, 7, store.quantity("p1"))
	assert.Empty(t, store.movements)
	require.Len(t, store.fiados, 1)
	require.NotNil(t, sale.Fiado)
	assert.Equal(t, "João", sale.Fiado.Customer)
	assert.False(t, sale.Fiado.Paid)
	assert.True(t, sale.Fiado.TotalPrice.Equal(decimal.RequireFromString("18.00")))

	paid, err := uc.PayFiado(ctx, sale.Fiado.ID)
	require.NoError(t, err)

	assert.Equal(t, 7, store.quantity("p1"))
	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementTypeExit, mov.Type)
	assert.Equal(t, 3, mov.Quantity)
	assert.Equal(t, "Fiado pago - cliente: João", mov.Note)

	f := store.fiados[sale.Fiado.ID]
	assert.True(t, f.Paid)
	require.NotNil(t, f.MovementID)
	assert.Equal(t, mov.ID, *f.MovementID)
	require.NotNil(t, f.PaidAt)
	assert.Equal(t, fixedNow, *f.PaidAt)
	assert.Equal(t, mov.ID, paid.Movement.ID)
}

func TestPayFiado_Twice(t *testing.T) {
	uc, store := newStockUseCase(t)
	ctx := context.Background()
	sale, err := uc.Exit(ctx, inventory.ExitInput{ProductID: "p1", Quantity: 1, IsCredit: true, Customer: "Maria"})
	require.NoError(t, err)
	_, err = uc.PayFiado(ctx, sale.Fiado.ID)
	require.NoError(t, err)

	_, err = uc.PayFiado(ctx, sale.Fiado.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, store.movements, 1)
}

func TestPayFiado_Unknown(t *testing.T) {
	uc, store := newStockUseCase(t)

	_, err := uc.PayFiado(context.Background(), "nao-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.movements)
}

func TestExit_CreditWithoutCustomer(t *testing.T) {
	uc, store := newStockUseCase(t)

	_, err := uc.Exit(context.Background(), inventory.ExitInput{ProductID: "p1", Quantity: 1, IsCredit: true, Customer: "   "})

	assert.ErrorIs(t, err, domain.ErrInvalidCustomer)
	assert.Equal(t, 10, store.quantity("p1"))
	assert.Empty(t, store.fiados)
}

func TestStockOperations_InvalidQuantity(t *testing.T) {
	uc, store := newStockUseCase(t)
	ctx := context.Background()

	for _, qty := range []int{0, -3} {
		_, err := uc.Entry(ctx, inventory.EntryInput{ProductID: "p1", Quantity: qty})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		_, err = uc.Exit(ctx, inventory.ExitInput{ProductID: "p1", Quantity: qty})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		_, err = uc.RegisterLoss(ctx, inventory.LossInput{ProductID: "p1", Quantity: qty})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
	assert.Equal(t, 10, store.quantity("p1"))
	assert.Zero(t, store.commits+store.rollbacks, "validação deve acontecer antes de abrir transação")
}

func TestStockOperations_UnknownProduct(t *testing.T) {
	uc, _ := newStockUseCase(t)
	ctx := context.Background()

	_, err := uc.Entry(ctx, inventory.EntryInput{ProductID: "x", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Exit(ctx, inventory.ExitInput{ProductID: "x", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.RegisterLoss(ctx, inventory.LossInput{ProductID: "x", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExit_LedgerFailureRollsBackQuantity(t *testing.T) {
	uc, store := newStockUseCase(t)
	store.failMovementCreate = errors.New("disk full")

	_, err := uc.Exit(context.Background(), inventory.ExitInput{ProductID: "p1", Quantity: 4})

	require.Error(t, err)
	assert.Equal(t, 10, store.quantity("p1"))
	assert.Equal(t, 1, store.rollbacks)
}

func TestRegisterLoss_LedgerFailureRollsBackQuantity(t *testing.T) {
	uc, store := newStockUseCase(t)
	store.failPrejuizoCreate = errors.New("disk full")

	_, err := uc.RegisterLoss(context.Background(), inventory.LossInput{ProductID: "p1", Quantity: 2})

	require.Error(t, err)
	assert.Equal(t, 10, store.quantity("p1"))
}

func TestListMovements_InvalidType(t *testing.T) {
	uc, _ := newStockUseCase(t)

	_, err := uc.ListMovements(context.Background(), repository.MovementFilter{Type: "TROCA"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListMovements_FilterByType(t *testing.T) {
	uc, _ := newStockUseCase(t)
	ctx := context.Background()
	_, err := uc.Entry(ctx, inventory.EntryInput{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	_, err = uc.Exit(ctx, inventory.ExitInput{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	list, err := uc.ListMovements(ctx, repository.MovementFilter{Type: entity.MovementTypeExit})

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].Quantity)
}

func TestRegisterMovementFromRequest(t *testing.T) {
	uc, store := newStockUseCase(t)
	ctx := context.Background()

	_, err := uc.RegisterMovementFromRequest(ctx, dto.RegisterMovementRequest{ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 13, store.quantity("p1"))

	res, err := uc.RegisterMovementFromRequest(ctx, dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeExit, Quantity: 2, IsCredit: true, Customer: "Ana",
	})
	require.NoError(t, err)
	assert.NotNil(t, res.Fiado)
	assert.Equal(t, 11, store.quantity("p1"))

	_, err = uc.RegisterMovementFromRequest(ctx, dto.RegisterMovementRequest{ProductID: "p1", Type: "AJUSTE", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
