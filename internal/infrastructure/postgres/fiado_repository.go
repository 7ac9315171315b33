package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.FiadoRepository = (*FiadoRepo)(nil)

const fiadoColumns = `id::text, produto_id::text, quantidade, valor_unitario, valor_total, cliente, pago, data, data_pagamento, movimentacao_id::text`

// FiadoRepo vendas fiado sobre PostgreSQL.
type FiadoRepo struct {
	q Querier
}

// NewFiadoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFiadoRepository(q Querier) *FiadoRepo {
	return &FiadoRepo{q: q}
}

func scanFiado(row pgx.Row) (*entity.Fiado, error) {
	var f entity.Fiado
	err := row.Scan(&f.ID, &f.ProductID, &f.Quantity, &f.UnitPrice, &f.TotalPrice,
		&f.Customer, &f.Paid, &f.CreatedAt, &f.PaidAt, &f.MovementID)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create grava um fiado em aberto.
func (r *FiadoRepo) Create(ctx context.Context, f *entity.Fiado) error {
	query := `
		INSERT INTO fiados (id, produto_id, quantidade, valor_unitario, valor_total, cliente, pago, data)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.ProductID, f.Quantity, f.UnitPrice, f.TotalPrice, f.Customer, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create fiado: %w", err)
	}
	return nil
}

func (r *FiadoRepo) get(ctx context.Context, id, suffix string) (*entity.Fiado, error) {
	if !validID(id) {
		return nil, nil
	}
	f, err := scanFiado(r.q.QueryRow(ctx, `SELECT `+fiadoColumns+` FROM fiados WHERE id = $1`+suffix, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fiado: %w", err)
	}
	return f, nil
}

// GetByID busca um fiado; nil se não existir.
func (r *FiadoRepo) GetByID(ctx context.Context, id string) (*entity.Fiado, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate busca com bloqueio da linha até o fim da transação.
func (r *FiadoRepo) GetForUpdate(ctx context.Context, id string) (*entity.Fiado, error) {
	return r.get(ctx, id, " FOR UPDATE")
}

func (r *FiadoRepo) list(ctx context.Context, where string) ([]*entity.Fiado, error) {
	rows, err := r.q.Query(ctx, `SELECT `+fiadoColumns+` FROM fiados`+where+` ORDER BY data DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list fiados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fiado
	for rows.Next() {
		f, err := scanFiado(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fiado: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// ListOpen fiados não pagos, mais recentes primeiro.
func (r *FiadoRepo) ListOpen(ctx context.Context) ([]*entity.Fiado, error) {
	return r.list(ctx, ` WHERE NOT pago`)
}

// List todos os fiados, mais recentes primeiro.
func (r *FiadoRepo) List(ctx context.Context) ([]*entity.Fiado, error) {
	return r.list(ctx, "")
}

// MarkPaid quita o fiado se ainda estiver em aberto; false quando nenhuma linha mudou.
func (r *FiadoRepo) MarkPaid(ctx context.Context, id, movementID string, paidAt time.Time) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE fiados SET pago = TRUE, data_pagamento = $2, movimentacao_id = $3
		WHERE id = $1 AND NOT pago`, id, paidAt, movementID)
	if err != nil {
		return false, fmt.Errorf("mark fiado paid: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}
