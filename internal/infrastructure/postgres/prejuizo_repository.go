package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.PrejuizoRepository = (*PrejuizoRepo)(nil)

// PrejuizoRepo livro de perdas sobre PostgreSQL.
type PrejuizoRepo struct {
	q Querier
}

// NewPrejuizoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPrejuizoRepository(q Querier) *PrejuizoRepo {
	return &PrejuizoRepo{q: q}
}

// Create grava uma perda.
func (r *PrejuizoRepo) Create(ctx context.Context, p *entity.Prejuizo) error {
	query := `
		INSERT INTO prejuizos (id, produto_id, quantidade, valor_unitario, valor_total, motivo, observacao, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.ProductID, p.Quantity, p.UnitPrice, p.TotalPrice, p.Reason, p.Note, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create prejuizo: %w", err)
	}
	return nil
}

// ListByPeriod perdas entre from e to (dias inclusivos), mais recentes primeiro.
func (r *PrejuizoRepo) ListByPeriod(ctx context.Context, from, to *time.Time) ([]*entity.Prejuizo, error) {
	query := `
		SELECT id::text, produto_id::text, quantidade, valor_unitario, valor_total, motivo, observacao, data
		FROM prejuizos WHERE TRUE`
	var args []any
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND data >= $%d::date", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND data < $%d::date + 1", pos)
		args = append(args, *to)
	}
	query += " ORDER BY data DESC, id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prejuizos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Prejuizo
	for rows.Next() {
		var p entity.Prejuizo
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Quantity, &p.UnitPrice, &p.TotalPrice,
			&p.Reason, &p.Note, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan prejuizo: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
