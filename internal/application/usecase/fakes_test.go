package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// catalog armazenamento em memória de produtos, tags e movimentações.
type catalog struct {
	products  map[string]*entity.Product
	tags      map[string]*entity.Tag
	links     map[string]map[string]bool // productID → tagIDs
	movements []*entity.StockMovement
	// produtos com histórico não podem ser excluídos fisicamente
	referenced map[string]bool
}

func newCatalog() *catalog {
	return &catalog{
		products:   map[string]*entity.Product{},
		tags:       map[string]*entity.Tag{},
		links:      map[string]map[string]bool{},
		referenced: map[string]bool{},
	}
}

func (c *catalog) withTags(p *entity.Product) *entity.Product {
	cp := *p
	cp.Tags = nil
	ids := make([]string, 0)
	for id := range c.links[p.ID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		cp.Tags = append(cp.Tags, *c.tags[id])
	}
	return &cp
}

type catalogTx struct{ c *catalog }

func (t *catalogTx) RunCatalog(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	productTagRepo repository.ProductTagRepository,
) error) error {
	return fn(&productRepo{t.c}, &movementRepo{t.c}, &productTagRepo{t.c})
}

type productRepo struct{ c *catalog }

func (r *productRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.c.products[p.ID] = &cp
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.c.products[id]
	if !ok {
		return nil, nil
	}
	return r.c.withTags(p), nil
}

func (r *productRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *productRepo) Update(_ context.Context, p *entity.Product) error {
	cur, ok := r.c.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.Quantity = cur.Quantity
	cp.Tags = nil
	r.c.products[p.ID] = &cp
	return nil
}

func (r *productRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	r.c.products[id].Quantity = quantity
	return nil
}

func (r *productRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.c.products {
		if p.Active || filter.IncludeInactive {
			out = append(out, r.c.withTags(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *productRepo) SearchByName(_ context.Context, name string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.c.products {
		if p.Active && strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			out = append(out, r.c.withTags(p))
		}
	}
	return out, nil
}

func (r *productRepo) SearchByNameOrTag(ctx context.Context, term string) ([]*entity.Product, error) {
	term = strings.ToLower(term)
	var out []*entity.Product
	for _, p := range r.c.products {
		if !p.Active {
			continue
		}
		full := r.c.withTags(p)
		match := strings.Contains(strings.ToLower(p.Name), term)
		for _, t := range full.Tags {
			if strings.Contains(strings.ToLower(t.Name), term) {
				match = true
			}
		}
		if match {
			out = append(out, full)
		}
	}
	return out, nil
}

func (r *productRepo) ListNearExpiry(_ context.Context, days int) ([]*entity.Product, error) {
	limit := time.Now().AddDate(0, 0, days)
	var out []*entity.Product
	for _, p := range r.c.products {
		if p.Active && p.ExpiryDate != nil && !p.ExpiryDate.After(limit) {
			out = append(out, r.c.withTags(p))
		}
	}
	return out, nil
}

func (r *productRepo) Delete(_ context.Context, id string) error {
	if r.c.referenced[id] {
		return domain.ErrConflict
	}
	delete(r.c.products, id)
	delete(r.c.links, id)
	return nil
}

type movementRepo struct{ c *catalog }

func (r *movementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.c.movements = append(r.c.movements, m)
	return nil
}

func (r *movementRepo) GetByID(_ context.Context, id string) (*entity.StockMovement, error) {
	for _, m := range r.c.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *movementRepo) List(_ context.Context, _ repository.MovementFilter) ([]*entity.StockMovement, error) {
	return r.c.movements, nil
}

type tagRepo struct{ c *catalog }

func (r *tagRepo) Create(_ context.Context, t *entity.Tag) error {
	r.c.tags[t.ID] = t
	return nil
}

func (r *tagRepo) GetByID(_ context.Context, id string) (*entity.Tag, error) {
	t, ok := r.c.tags[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (r *tagRepo) GetByName(_ context.Context, name string) (*entity.Tag, error) {
	for _, t := range r.c.tags {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return nil, nil
}

func (r *tagRepo) List(_ context.Context) ([]*entity.Tag, error) {
	out := make([]*entity.Tag, 0, len(r.c.tags))
	for _, t := range r.c.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *tagRepo) Delete(_ context.Context, id string) error {
	delete(r.c.tags, id)
	for _, set := range r.c.links {
		delete(set, id)
	}
	return nil
}

type productTagRepo struct{ c *catalog }

func (r *productTagRepo) Add(_ context.Context, productID, tagID string) error {
	if r.c.links[productID] == nil {
		r.c.links[productID] = map[string]bool{}
	}
	r.c.links[productID][tagID] = true
	return nil
}

func (r *productTagRepo) Remove(_ context.Context, productID, tagID string) error {
	delete(r.c.links[productID], tagID)
	return nil
}

func (r *productTagRepo) ListTagsByProduct(_ context.Context, productID string) ([]*entity.Tag, error) {
	p := r.c.withTags(&entity.Product{ID: productID})
	out := make([]*entity.Tag, 0, len(p.Tags))
	for i := range p.Tags {
		out = append(out, &p.Tags[i])
	}
	return out, nil
}

func (r *productTagRepo) ListProductsByTag(_ context.Context, tagID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for pid, set := range r.c.links {
		if set[tagID] {
			if p, ok := r.c.products[pid]; ok {
				out = append(out, r.c.withTags(p))
			}
		}
	}
	return out, nil
}

func (r *productTagRepo) ReplaceProductTags(ctx context.Context, productID string, tagIDs []string) error {
	r.c.links[productID] = map[string]bool{}
	for _, id := range tagIDs {
		if err := r.Add(ctx, productID, id); err != nil {
			return err
		}
	}
	return nil
}
