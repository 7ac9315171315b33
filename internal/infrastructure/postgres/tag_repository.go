package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var (
	_ repository.TagRepository        = (*TagRepo)(nil)
	_ repository.ProductTagRepository = (*ProductTagRepo)(nil)
)

// TagRepo persistência de tags.
type TagRepo struct {
	q Querier
}

// NewTagRepository constrói o repositório de tags.
func NewTagRepository(q Querier) *TagRepo {
	return &TagRepo{q: q}
}

// Create insere a tag. Nome repetido (tags_nome_key) devolve ErrDuplicateName.
func (r *TagRepo) Create(ctx context.Context, tag *entity.Tag) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO tags (id, nome, criado_em) VALUES ($1, $2, $3)`,
		tag.ID, tag.Name, tag.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

func (r *TagRepo) getOne(ctx context.Context, where string, arg any) (*entity.Tag, error) {
	var t entity.Tag
	err := r.q.QueryRow(ctx, `SELECT id::text, nome, criado_em FROM tags WHERE `+where, arg).
		Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return &t, nil
}

// GetByID busca por id; nil se não existir.
func (r *TagRepo) GetByID(ctx context.Context, id string) (*entity.Tag, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `id = $1`, id)
}

// GetByName busca pelo nome exato.
func (r *TagRepo) GetByName(ctx context.Context, name string) (*entity.Tag, error) {
	return r.getOne(ctx, `nome = $1`, name)
}

// List todas as tags por nome.
func (r *TagRepo) List(ctx context.Context) ([]*entity.Tag, error) {
	rows, err := r.q.Query(ctx, `SELECT id::text, nome, criado_em FROM tags ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return collectTags(rows)
}

// Delete remove a tag; as associações caem em cascata.
func (r *TagRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

func collectTags(rows pgx.Rows) ([]*entity.Tag, error) {
	defer rows.Close()
	var list []*entity.Tag
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// ProductTagRepo associação produto/tag.
type ProductTagRepo struct {
	q Querier
}

// NewProductTagRepository constrói o repositório de associações.
func NewProductTagRepository(q Querier) *ProductTagRepo {
	return &ProductTagRepo{q: q}
}

// Add associa a tag ao produto; repetir é no-op.
func (r *ProductTagRepo) Add(ctx context.Context, productID, tagID string) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO produto_tag (produto_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		productID, tagID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("add product tag: %w", err)
	}
	return nil
}

// Remove desfaz a associação (no-op se não existir).
func (r *ProductTagRepo) Remove(ctx context.Context, productID, tagID string) error {
	if !validID(productID) || !validID(tagID) {
		return nil
	}
	_, err := r.q.Exec(ctx, `DELETE FROM produto_tag WHERE produto_id = $1 AND tag_id = $2`, productID, tagID)
	if err != nil {
		return fmt.Errorf("remove product tag: %w", err)
	}
	return nil
}

// ListTagsByProduct tags do produto por nome.
func (r *ProductTagRepo) ListTagsByProduct(ctx context.Context, productID string) ([]*entity.Tag, error) {
	if !validID(productID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT t.id::text, t.nome, t.criado_em
		FROM tags t JOIN produto_tag pt ON pt.tag_id = t.id
		WHERE pt.produto_id = $1 ORDER BY t.nome`, productID)
	if err != nil {
		return nil, fmt.Errorf("list tags by product: %w", err)
	}
	return collectTags(rows)
}

// ListProductsByTag produtos ativos associados à tag, com todas as suas tags.
func (r *ProductTagRepo) ListProductsByTag(ctx context.Context, tagID string) ([]*entity.Product, error) {
	if !validID(tagID) {
		return nil, nil
	}
	query := productSelect + `
		WHERE p.ativo AND EXISTS (SELECT 1 FROM produto_tag x WHERE x.produto_id = p.id AND x.tag_id = $1)
		GROUP BY p.id ORDER BY p.nome`
	rows, err := r.q.Query(ctx, query, tagID)
	if err != nil {
		return nil, fmt.Errorf("list products by tag: %w", err)
	}
	return collectProducts(rows)
}

// ReplaceProductTags apaga as associações do produto e grava tagIDs.
func (r *ProductTagRepo) ReplaceProductTags(ctx context.Context, productID string, tagIDs []string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM produto_tag WHERE produto_id = $1`, productID); err != nil {
		return fmt.Errorf("clear product tags: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO produto_tag (produto_id, tag_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING`, productID, tagIDs)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("replace product tags: %w", err)
	}
	return nil
}
