package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Estoque-api/internal/application/caixa"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner      = (*TxRunner)(nil)
	_ usecase.CatalogTxRunner = (*TxRunner)(nil)
	_ caixa.TxRunner          = (*TxRunner)(nil)
)

// TxRunner executa callbacks dentro de uma transação PostgreSQL SERIALIZABLE.
// Rollback adiado; Commit explícito só quando fn retorna nil.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// inTx sem novas tentativas: conflito de serialização (40001) volta como domain.ErrConflict e o cliente repete.
func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	err := r.run(ctx, fn)
	if err != nil && IsSerializationFailure(err) {
		return fmt.Errorf("transação concorrente: %w: %w", domain.ErrConflict, err)
	}
	return err
}

func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run transação das operações de estoque: produto, movimentação, fiado e prejuízo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	fiadoRepo repository.FiadoRepository,
	prejuizoRepo repository.PrejuizoRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(
			NewProductRepository(tx),
			NewStockMovementRepository(tx),
			NewFiadoRepository(tx),
			NewPrejuizoRepository(tx),
		)
	})
}

// RunCatalog transação do cadastro de produto: produto, estoque inicial e tags.
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	productTagRepo repository.ProductTagRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewProductRepository(tx), NewStockMovementRepository(tx), NewProductTagRepository(tx))
	})
}

// RunCaixa transação de abertura/fechamento de caixa.
func (r *TxRunner) RunCaixa(ctx context.Context, fn func(caixaRepo repository.CaixaRepository) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewCaixaRepository(tx))
	})
}
