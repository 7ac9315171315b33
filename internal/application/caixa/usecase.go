package caixa

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// UseCase máquina de estados do caixa diário: sem registro → ABERTO → FECHADO.
// No máximo um caixa por dia e um ABERTO no sistema; sem virada de dia nem abertura retroativa.
type UseCase struct {
	txRunner  TxRunner
	caixaRepo repository.CaixaRepository
	now       func() time.Time
}

// NewUseCase constrói o caso de uso. caixaRepo (fora de transação) serve às consultas.
func NewUseCase(txRunner TxRunner, caixaRepo repository.CaixaRepository) *UseCase {
	return &UseCase{txRunner: txRunner, caixaRepo: caixaRepo, now: time.Now}
}

// WithClock substitui o relógio (testes).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// CloseResult caixa fechado e a diferença fechamento − abertura (não persistida).
type CloseResult struct {
	Caixa    *entity.Caixa
	Variance decimal.Decimal
}

// Open abre o caixa de hoje. Ordem das verificações: outro caixa aberto, caixa de hoje já existente, valor negativo.
func (uc *UseCase) Open(ctx context.Context, openingAmount decimal.Decimal) (*entity.Caixa, error) {
	now := uc.now()
	today := inventory.DateOf(now)
	var out *entity.Caixa
	err := uc.txRunner.RunCaixa(ctx, func(caixaRepo repository.CaixaRepository) error {
		open, err := caixaRepo.FindOpen(ctx)
		if err != nil {
			return err
		}
		if open != nil {
			return domain.ErrCaixaAlreadyOpenElsewhere
		}
		existing, err := caixaRepo.FindByDate(ctx, today)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrCaixaAlreadyOpenToday
		}
		if openingAmount.IsNegative() {
			return domain.ErrInvalidAmount
		}
		c := &entity.Caixa{
			ID:            uuid.New().String(),
			Date:          today,
			OpeningAmount: openingAmount,
			Status:        entity.CaixaStatusOpen,
			OpenedAt:      now,
		}
		if err := caixaRepo.Create(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Close fecha o caixa informado. Ordem: inexistente, já fechado, valor negativo.
func (uc *UseCase) Close(ctx context.Context, caixaID string, closingAmount decimal.Decimal) (*CloseResult, error) {
	var out *CloseResult
	err := uc.txRunner.RunCaixa(ctx, func(caixaRepo repository.CaixaRepository) error {
		c, err := caixaRepo.GetForUpdate(ctx, caixaID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if !c.IsOpen() {
			return domain.ErrCaixaAlreadyClosed
		}
		if closingAmount.IsNegative() {
			return domain.ErrInvalidAmount
		}
		closedAt := uc.now()
		amount := closingAmount
		c.Status = entity.CaixaStatusClosed
		c.ClosingAmount = &amount
		c.ClosedAt = &closedAt
		if err := caixaRepo.Close(ctx, c); err != nil {
			return err
		}
		out = &CloseResult{Caixa: c, Variance: c.Variance()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Today caixa do dia corrente; nil se ainda não foi aberto.
func (uc *UseCase) Today(ctx context.Context) (*entity.Caixa, error) {
	return uc.caixaRepo.FindByDate(ctx, inventory.DateOf(uc.now()))
}

// CurrentOpen caixa ABERTO, se houver.
func (uc *UseCase) CurrentOpen(ctx context.Context) (*entity.Caixa, error) {
	return uc.caixaRepo.FindOpen(ctx)
}

// GetByID caixa pelo id; nil quando não existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.Caixa, error) {
	return uc.caixaRepo.GetByID(ctx, id)
}

// List todos os caixas, mais recentes primeiro.
func (uc *UseCase) List(ctx context.Context) ([]*entity.Caixa, error) {
	return uc.caixaRepo.List(ctx)
}
