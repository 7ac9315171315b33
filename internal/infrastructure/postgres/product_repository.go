package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productSelect colunas de produto + tags agregadas (ordenadas por nome).
// Usar sempre com GROUP BY p.id.
const productSelect = `
	SELECT p.id::text, p.nome, p.quantidade, p.valor_compra, p.valor_venda, p.data_validade,
	       p.estoque_minimo, p.ativo, p.criado_em, p.atualizado_em,
	       COALESCE(array_agg(t.id::text ORDER BY t.nome) FILTER (WHERE t.id IS NOT NULL), '{}'),
	       COALESCE(array_agg(t.nome ORDER BY t.nome) FILTER (WHERE t.id IS NOT NULL), '{}')
	FROM produtos p
	LEFT JOIN produto_tag pt ON pt.produto_id = p.id
	LEFT JOIN tags t ON t.id = pt.tag_id`

// ProductRepo implementação de ProductRepository sobre PostgreSQL (pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o repositório. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// validID evita erro 22P02 do Postgres para ids que não são UUID: tratados como inexistentes.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p        entity.Product
		tagIDs   []string
		tagNames []string
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Quantity, &p.PurchasePrice, &p.SalePrice, &p.ExpiryDate,
		&p.MinStock, &p.Active, &p.CreatedAt, &p.UpdatedAt, &tagIDs, &tagNames,
	)
	if err != nil {
		return nil, err
	}
	p.Tags = make([]entity.Tag, 0, len(tagIDs))
	for i := range tagIDs {
		p.Tags = append(p.Tags, entity.Tag{ID: tagIDs[i], Name: tagNames[i]})
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste um novo produto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO produtos (id, nome, quantidade, valor_compra, valor_venda, data_validade, estoque_minimo, ativo, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Quantity, product.PurchasePrice, product.SalePrice,
		product.ExpiryDate, product.MinStock, product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID busca um produto com suas tags; nil se não existir.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1 GROUP BY p.id`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate bloqueia a linha do produto até o fim da transação. Não carrega tags.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `
		SELECT id::text, nome, quantidade, valor_compra, valor_venda, data_validade, estoque_minimo, ativo, criado_em, atualizado_em
		FROM produtos WHERE id = $1 FOR UPDATE`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Quantity, &p.PurchasePrice, &p.SalePrice, &p.ExpiryDate,
		&p.MinStock, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return &p, nil
}

// Update altera os campos cadastrais. A quantidade só muda via UpdateQuantity.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE produtos SET nome = $2, valor_compra = $3, valor_venda = $4, data_validade = $5,
		       estoque_minimo = $6, ativo = $7, atualizado_em = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.PurchasePrice, product.SalePrice, product.ExpiryDate,
		product.MinStock, product.Active, product.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity grava a nova quantidade. CHECK (quantidade >= 0) vira ErrInsufficientStock.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE produtos SET quantidade = $2, atualizado_em = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// List lista produtos por nome; inativos só com IncludeInactive.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := productSelect + ` WHERE p.ativo OR $1 GROUP BY p.id ORDER BY p.nome`
	rows, err := r.q.Query(ctx, query, filter.IncludeInactive)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}

// SearchByName produtos ativos cujo nome contém name (sem diferenciar maiúsculas).
func (r *ProductRepo) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	query := productSelect + ` WHERE p.ativo AND p.nome ILIKE $1 GROUP BY p.id ORDER BY p.nome`
	rows, err := r.q.Query(ctx, query, likePattern(name))
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return collectProducts(rows)
}

// SearchByNameOrTag produtos ativos cujo nome ou alguma tag contém term.
func (r *ProductRepo) SearchByNameOrTag(ctx context.Context, term string) ([]*entity.Product, error) {
	query := productSelect + `
		WHERE p.ativo AND (p.nome ILIKE $1 OR EXISTS (
			SELECT 1 FROM produto_tag pt2 JOIN tags t2 ON t2.id = pt2.tag_id
			WHERE pt2.produto_id = p.id AND t2.nome ILIKE $1))
		GROUP BY p.id ORDER BY p.nome`
	rows, err := r.q.Query(ctx, query, likePattern(term))
	if err != nil {
		return nil, fmt.Errorf("search products by name or tag: %w", err)
	}
	return collectProducts(rows)
}

// ListNearExpiry produtos ativos com validade até hoje + days, vencidos inclusive.
func (r *ProductRepo) ListNearExpiry(ctx context.Context, days int) ([]*entity.Product, error) {
	query := productSelect + `
		WHERE p.ativo AND p.data_validade IS NOT NULL AND p.data_validade <= CURRENT_DATE + $1::int
		GROUP BY p.id ORDER BY p.data_validade, p.nome`
	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("list products near expiry: %w", err)
	}
	return collectProducts(rows)
}

// Delete remove o produto. Com movimentações, fiados ou prejuízos vinculados devolve ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	_, err := r.q.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// likePattern escapa curingas do ILIKE e envolve o termo em %.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(term)) + "%"
}
