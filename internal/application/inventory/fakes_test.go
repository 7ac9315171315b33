package inventory_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Armazenamento em memória com semântica de transação (snapshot + restore)
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products  map[string]*entity.Product
	movements []*entity.StockMovement
	fiados    map[string]*entity.Fiado
	prejuizos []*entity.Prejuizo

	// falhas injetadas
	failMovementCreate error
	failPrejuizoCreate error
	commits, rollbacks int
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]*entity.Product{},
		fiados:   map[string]*entity.Fiado{},
	}
}

func (s *memStore) snapshot() *memStore {
	cp := &memStore{
		products:  make(map[string]*entity.Product, len(s.products)),
		fiados:    make(map[string]*entity.Fiado, len(s.fiados)),
		movements: append([]*entity.StockMovement(nil), s.movements...),
		prejuizos: append([]*entity.Prejuizo(nil), s.prejuizos...),
	}
	for k, v := range s.products {
		p := *v
		cp.products[k] = &p
	}
	for k, v := range s.fiados {
		f := *v
		cp.fiados[k] = &f
	}
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.products = from.products
	s.fiados = from.fiados
	s.movements = from.movements
	s.prejuizos = from.prejuizos
}

func (s *memStore) addProduct(p *entity.Product) {
	s.products[p.ID] = p
}

func (s *memStore) quantity(id string) int {
	return s.products[id].Quantity
}

// fakeTxRunner implementa inventory.TxRunner: Rollback restaura o snapshot.
type fakeTxRunner struct{ store *memStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	fiadoRepo repository.FiadoRepository,
	prejuizoRepo repository.PrejuizoRepository,
) error) error {
	snap := r.store.snapshot()
	if err := fn(&fakeProductRepo{r.store}, &fakeMovementRepo{r.store}, &fakeFiadoRepo{r.store}, &fakePrejuizoRepo{r.store}); err != nil {
		r.store.restore(snap)
		r.store.rollbacks++
		return err
	}
	r.store.commits++
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositórios fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cur, ok := r.s.products[p.ID]
	if !ok {
		return nil
	}
	qty := cur.Quantity
	cp := *p
	cp.Quantity = qty
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	if quantity < 0 {
		return errors.New("check constraint: quantity >= 0")
	}
	r.s.products[id].Quantity = quantity
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.Active || filter.IncludeInactive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) SearchByName(_ context.Context, name string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) SearchByNameOrTag(ctx context.Context, term string) ([]*entity.Product, error) {
	return r.SearchByName(ctx, term)
}

func (r *fakeProductRepo) ListNearExpiry(_ context.Context, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.s.products, id)
	return nil
}

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	if r.s.failMovementCreate != nil {
		return r.s.failMovementCreate
	}
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id string) (*entity.StockMovement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(_ context.Context, filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeFiadoRepo struct{ s *memStore }

func (r *fakeFiadoRepo) Create(_ context.Context, f *entity.Fiado) error {
	r.s.fiados[f.ID] = f
	return nil
}

func (r *fakeFiadoRepo) GetByID(_ context.Context, id string) (*entity.Fiado, error) {
	f, ok := r.s.fiados[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFiadoRepo) GetForUpdate(ctx context.Context, id string) (*entity.Fiado, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeFiadoRepo) ListOpen(_ context.Context) ([]*entity.Fiado, error) {
	var out []*entity.Fiado
	for _, f := range r.s.fiados {
		if !f.Paid {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFiadoRepo) List(_ context.Context) ([]*entity.Fiado, error) {
	var out []*entity.Fiado
	for _, f := range r.s.fiados {
		out = append(out, f)
	}
	return out, nil
}

func (r *fakeFiadoRepo) MarkPaid(_ context.Context, id, movementID string, paidAt time.Time) (bool, error) {
	f, ok := r.s.fiados[id]
	if !ok || f.Paid {
		return false, nil
	}
	f.Paid = true
	f.PaidAt = &paidAt
	f.MovementID = &movementID
	return true, nil
}

type fakePrejuizoRepo struct{ s *memStore }

func (r *fakePrejuizoRepo) Create(_ context.Context, p *entity.Prejuizo) error {
	if r.s.failPrejuizoCreate != nil {
		return r.s.failPrejuizoCreate
	}
	r.s.prejuizos = append(r.s.prejuizos, p)
	return nil
}

func (r *fakePrejuizoRepo) ListByPeriod(_ context.Context, _, _ *time.Time) ([]*entity.Prejuizo, error) {
	return r.s.prejuizos, nil
}

// fakeAnalyticsRepo implementa apenas o que a reposição usa; o resto entra em pânico se chamado.
type fakeAnalyticsRepo struct {
	repository.AnalyticsRepository
	lowStock []repository.LowStockItem
	turnover []repository.TurnoverItem
}

func (r *fakeAnalyticsRepo) GetLowStockProducts(context.Context) ([]repository.LowStockItem, error) {
	return r.lowStock, nil
}

func (r *fakeAnalyticsRepo) GetTurnover(context.Context, int) ([]repository.TurnoverItem, error) {
	return r.turnover, nil
}
