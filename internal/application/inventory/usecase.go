package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// StockUseCase operações de estoque: entrada, saída (à vista ou fiado), pagamento de fiado e prejuízo.
// Cada operação roda numa única transação: bloqueia a linha do produto (SELECT FOR UPDATE),
// valida, altera a quantidade e grava o registro do livro correspondente. Commit ou Rollback no TxRunner.
type StockUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
	fiadoRepo    repository.FiadoRepository
	prejuizoRepo repository.PrejuizoRepository
	now          func() time.Time
}

// NewStockUseCase constrói o caso de uso. Os repositórios avulsos servem apenas às consultas.
func NewStockUseCase(
	txRunner TxRunner,
	movementRepo repository.StockMovementRepository,
	fiadoRepo repository.FiadoRepository,
	prejuizoRepo repository.PrejuizoRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		fiadoRepo:    fiadoRepo,
		prejuizoRepo: prejuizoRepo,
		now:          time.Now,
	}
}

// WithClock substitui o relógio (testes).
func (uc *StockUseCase) WithClock(now func() time.Time) *StockUseCase {
	uc.now = now
	return uc
}

// EntryInput entrada de mercadoria.
type EntryInput struct {
	ProductID string
	Quantity  int
	Note      string
	UnitPrice *decimal.Decimal // custo unitário da compra (opcional)
}

// ExitInput saída de mercadoria. IsCredit = venda fiado para Customer.
type ExitInput struct {
	ProductID string
	Quantity  int
	Note      string
	IsCredit  bool
	Customer  string
}

// LossInput baixa por prejuízo.
type LossInput struct {
	ProductID string
	Quantity  int
	Reason    string
	Note      string
}

// StockResult resultado de uma operação de estoque. Apenas o registro criado pela operação vem preenchido.
type StockResult struct {
	ProductID string
	Quantity  int // quantidade do produto após a operação
	Movement  *entity.StockMovement
	Fiado     *entity.Fiado
	Prejuizo  *entity.Prejuizo
}

// Entry soma quantity ao produto e registra uma movimentação ENTRADA. Sem limite superior.
func (uc *StockUseCase) Entry(ctx context.Context, in EntryInput) (*StockResult, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	var out *StockResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		_ repository.FiadoRepository,
		_ repository.PrejuizoRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := inventory.CheckEntry(product.Quantity, in.Quantity); err != nil {
			return err
		}
		newQty := product.Quantity + in.Quantity
		if err := productRepo.UpdateQuantity(ctx, product.ID, newQty); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      entity.MovementTypeEntry,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			Note:      strings.TrimSpace(in.Note),
			CreatedAt: uc.now(),
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		out = &StockResult{ProductID: product.ID, Quantity: newQty, Movement: mov}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Exit retira quantity do produto. À vista: registra movimentação SAIDA ao preço de venda atual.
// Fiado: cria um Fiado em aberto (preço de venda atual × quantidade) e NÃO registra movimentação;
// a venda só entra no livro quando o fiado for pago.
func (uc *StockUseCase) Exit(ctx context.Context, in ExitInput) (*StockResult, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	customer := strings.TrimSpace(in.Customer)
	var out *StockResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		fiadoRepo repository.FiadoRepository,
		_ repository.PrejuizoRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if err := inventory.CheckWithdrawal(product, in.Quantity); err != nil {
			return err
		}
		if in.IsCredit && customer == "" {
			return domain.ErrInvalidCustomer
		}
		newQty := product.Quantity - in.Quantity
		if err := productRepo.UpdateQuantity(ctx, product.ID, newQty); err != nil {
			return err
		}
		now := uc.now()
		unitPrice := product.SalePrice
		out = &StockResult{ProductID: product.ID, Quantity: newQty}

		if in.IsCredit {
			fiado := &entity.Fiado{
				ID:         uuid.New().String(),
				ProductID:  product.ID,
				Quantity:   in.Quantity,
				UnitPrice:  unitPrice,
				TotalPrice: inventory.LineTotal(unitPrice, in.Quantity),
				Customer:   customer,
				CreatedAt:  now,
			}
			if err := fiadoRepo.Create(ctx, fiado); err != nil {
				return err
			}
			out.Fiado = fiado
			return nil
		}

		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      entity.MovementTypeExit,
			Quantity:  in.Quantity,
			UnitPrice: &unitPrice,
			Note:      strings.TrimSpace(in.Note),
			CreatedAt: now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		out.Movement = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PayFiado quita um fiado em aberto: cria a movimentação SAIDA (mesmo produto, quantidade e preço do fiado)
// e marca o fiado como pago vinculado a ela. A quantidade do produto não muda (já saiu na venda).
// Fiado inexistente ou já pago devolve ErrNotFound e não cria movimentação.
func (uc *StockUseCase) PayFiado(ctx context.Context, fiadoID string) (*StockResult, error) {
	var out *StockResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		fiadoRepo repository.FiadoRepository,
		_ repository.PrejuizoRepository,
	) error {
		fiado, err := fiadoRepo.GetForUpdate(ctx, fiadoID)
		if err != nil {
			return err
		}
		if fiado == nil || fiado.Paid {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetByID(ctx, fiado.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		now := uc.now()
		unitPrice := fiado.UnitPrice
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: fiado.ProductID,
			Type:      entity.MovementTypeExit,
			Quantity:  fiado.Quantity,
			UnitPrice: &unitPrice,
			Note:      fmt.Sprintf("Fiado pago - cliente: %s", fiado.Customer),
			CreatedAt: now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		updated, err := fiadoRepo.MarkPaid(ctx, fiado.ID, mov.ID, now)
		if err != nil {
			return err
		}
		if !updated {
			return domain.ErrNotFound
		}
		fiado.Paid = true
		fiado.PaidAt = &now
		fiado.MovementID = &mov.ID
		out = &StockResult{ProductID: product.ID, Quantity: product.Quantity, Movement: mov, Fiado: fiado}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterLoss baixa quantity do estoque como prejuízo (preço de venda atual × quantidade).
// Nunca gera movimentação: perdas ficam num livro separado das vendas.
func (uc *StockUseCase) RegisterLoss(ctx context.Context, in LossInput) (*StockResult, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		reason = entity.LossReasonOther
	}
	var out *StockResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockMovementRepository,
		_ repository.FiadoRepository,
		prejuizoRepo repository.PrejuizoRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if err := inventory.CheckWithdrawal(product, in.Quantity); err != nil {
			return err
		}
		newQty := product.Quantity - in.Quantity
		if err := productRepo.UpdateQuantity(ctx, product.ID, newQty); err != nil {
			return err
		}
		loss := &entity.Prejuizo{
			ID:         uuid.New().String(),
			ProductID:  product.ID,
			Quantity:   in.Quantity,
			UnitPrice:  product.SalePrice,
			TotalPrice: inventory.LineTotal(product.SalePrice, in.Quantity),
			Reason:     reason,
			Note:       strings.TrimSpace(in.Note),
			CreatedAt:  uc.now(),
		}
		if err := prejuizoRepo.Create(ctx, loss); err != nil {
			return err
		}
		out = &StockResult{ProductID: product.ID, Quantity: newQty, Prejuizo: loss}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListMovements consulta o livro de movimentações.
func (uc *StockUseCase) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	if filter.Type != "" && !entity.IsValidMovementType(filter.Type) {
		return nil, domain.ErrInvalidInput
	}
	return uc.movementRepo.List(ctx, filter)
}

// ListOpenFiados fiados ainda não pagos, mais recentes primeiro.
func (uc *StockUseCase) ListOpenFiados(ctx context.Context) ([]*entity.Fiado, error) {
	return uc.fiadoRepo.ListOpen(ctx)
}

// ListFiados todos os fiados.
func (uc *StockUseCase) ListFiados(ctx context.Context) ([]*entity.Fiado, error) {
	return uc.fiadoRepo.List(ctx)
}

// GetFiado busca um fiado; nil se não existir.
func (uc *StockUseCase) GetFiado(ctx context.Context, id string) (*entity.Fiado, error) {
	return uc.fiadoRepo.GetByID(ctx, id)
}

// ListPrejuizos perdas no período (datas opcionais).
func (uc *StockUseCase) ListPrejuizos(ctx context.Context, from, to *time.Time) ([]*entity.Prejuizo, error) {
	return uc.prejuizoRepo.ListByPeriod(ctx, from, to)
}
