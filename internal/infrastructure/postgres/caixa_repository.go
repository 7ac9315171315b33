package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.CaixaRepository = (*CaixaRepo)(nil)

const caixaColumns = `id::text, data, valor_abertura, valor_fechamento, status, data_abertura, data_fechamento`

// CaixaRepo sessões de caixa sobre PostgreSQL.
type CaixaRepo struct {
	q Querier
}

// NewCaixaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCaixaRepository(q Querier) *CaixaRepo {
	return &CaixaRepo{q: q}
}

func scanCaixa(row pgx.Row) (*entity.Caixa, error) {
	var c entity.Caixa
	if err := row.Scan(&c.ID, &c.Date, &c.OpeningAmount, &c.ClosingAmount, &c.Status, &c.OpenedAt, &c.ClosedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create abre o caixa. As constraints resolvem corridas entre aberturas simultâneas:
// caixas_um_aberto -> ErrCaixaAlreadyOpenElsewhere, caixas_data_key -> ErrCaixaAlreadyOpenToday.
func (r *CaixaRepo) Create(ctx context.Context, c *entity.Caixa) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO caixas (id, data, valor_abertura, status, data_abertura)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Date, c.OpeningAmount, c.Status, c.OpenedAt,
	)
	if err != nil {
		switch {
		case uniqueViolationOn(err, "caixas_um_aberto"):
			return domain.ErrCaixaAlreadyOpenElsewhere
		case uniqueViolationOn(err, "caixas_data_key"):
			return domain.ErrCaixaAlreadyOpenToday
		}
		return fmt.Errorf("create caixa: %w", err)
	}
	return nil
}

func (r *CaixaRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Caixa, error) {
	c, err := scanCaixa(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get caixa: %w", err)
	}
	return c, nil
}

// GetByID busca um caixa; nil se não existir.
func (r *CaixaRepo) GetByID(ctx context.Context, id string) (*entity.Caixa, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+caixaColumns+` FROM caixas WHERE id = $1`, id)
}

// GetForUpdate busca com bloqueio da linha (fechamento).
func (r *CaixaRepo) GetForUpdate(ctx context.Context, id string) (*entity.Caixa, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+caixaColumns+` FROM caixas WHERE id = $1 FOR UPDATE`, id)
}

// FindByDate caixa do dia civil informado.
func (r *CaixaRepo) FindByDate(ctx context.Context, date time.Time) (*entity.Caixa, error) {
	return r.getOne(ctx, `SELECT `+caixaColumns+` FROM caixas WHERE data = $1::date`, date)
}

// FindOpen o caixa ABERTO, se houver.
func (r *CaixaRepo) FindOpen(ctx context.Context) (*entity.Caixa, error) {
	return r.getOne(ctx, `SELECT `+caixaColumns+` FROM caixas WHERE status = $1`, entity.CaixaStatusOpen)
}

// Close grava o fechamento.
func (r *CaixaRepo) Close(ctx context.Context, c *entity.Caixa) error {
	_, err := r.q.Exec(ctx, `
		UPDATE caixas SET status = $2, valor_fechamento = $3, data_fechamento = $4
		WHERE id = $1`, c.ID, c.Status, c.ClosingAmount, c.ClosedAt)
	if err != nil {
		return fmt.Errorf("close caixa: %w", err)
	}
	return nil
}

// List caixas do mais recente ao mais antigo.
func (r *CaixaRepo) List(ctx context.Context) ([]*entity.Caixa, error) {
	rows, err := r.q.Query(ctx, `SELECT `+caixaColumns+` FROM caixas ORDER BY data DESC`)
	if err != nil {
		return nil, fmt.Errorf("list caixas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Caixa
	for rows.Next() {
		c, err := scanCaixa(rows)
		if err != nil {
			return nil, fmt.Errorf("scan caixa: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
