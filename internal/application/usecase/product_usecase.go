package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// initialStockNote observação da ENTRADA gerada no cadastro com quantidade inicial.
const initialStockNote = "Estoque inicial"

// ProductUseCase cadastro de produtos e tags do produto. A quantidade só muda via movimentações;
// o cadastro com quantidade inicial registra a ENTRADA correspondente na mesma transação.
type ProductUseCase struct {
	txRunner        CatalogTxRunner
	repo            repository.ProductRepository
	tagRepo         repository.TagRepository
	productTagRepo  repository.ProductTagRepository
	alertWindowDays int
	now             func() time.Time
}

// NewProductUseCase constrói o caso de uso. alertWindowDays é a janela padrão de "Perto do vencimento".
func NewProductUseCase(
	txRunner CatalogTxRunner,
	repo repository.ProductRepository,
	tagRepo repository.TagRepository,
	productTagRepo repository.ProductTagRepository,
	alertWindowDays int,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:        txRunner,
		repo:            repo,
		tagRepo:         tagRepo,
		productTagRepo:  productTagRepo,
		alertWindowDays: alertWindowDays,
		now:             time.Now,
	}
}

// WithClock substitui o relógio (testes).
func (uc *ProductUseCase) WithClock(now func() time.Time) *ProductUseCase {
	uc.now = now
	return uc
}

// Create cadastra um produto. Estoque mínimo padrão 5.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	minStock := entity.DefaultMinStock
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		minStock = *in.MinStock
	}
	expiry, err := parseExpiry(in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	tagIDs, err := uc.checkTags(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		ExpiryDate:    expiry,
		MinStock:      minStock,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err = uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		productTagRepo repository.ProductTagRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if product.Quantity > 0 {
			unitCost := product.PurchasePrice
			if err := movRepo.Create(ctx, &entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Type:      entity.MovementTypeEntry,
				Quantity:  product.Quantity,
				UnitPrice: &unitCost,
				Note:      initialStockNote,
				CreatedAt: now,
			}); err != nil {
				return err
			}
		}
		if len(tagIDs) > 0 {
			return productTagRepo.ReplaceProductTags(ctx, product.ID, tagIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, product.ID)
}

// GetByID obtém um produto com suas tags; nil se não existir.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update altera os campos cadastrais. A quantidade não é alterável aqui.
// TagIDs != nil substitui o conjunto de tags.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidAmount
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidAmount
		}
		product.SalePrice = *in.SalePrice
	}
	if in.ClearExpiryDate {
		product.ExpiryDate = nil
	} else if in.ExpiryDate != nil {
		expiry, err := parseExpiry(in.ExpiryDate)
		if err != nil {
			return nil, err
		}
		product.ExpiryDate = expiry
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	var tagIDs []string
	if in.TagIDs != nil {
		if tagIDs, err = uc.checkTags(ctx, in.TagIDs); err != nil {
			return nil, err
		}
	}
	product.UpdatedAt = uc.now()

	err = uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockMovementRepository,
		productTagRepo repository.ProductTagRepository,
	) error {
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		if in.TagIDs != nil {
			return productTagRepo.ReplaceProductTags(ctx, product.ID, tagIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, product.ID)
}

// List produtos ordenados por nome; inativos só com includeInactive.
func (uc *ProductUseCase) List(ctx context.Context, includeInactive bool) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{IncludeInactive: includeInactive})
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca por nome ou tag; termo vazio equivale a List.
func (uc *ProductUseCase) Search(ctx context.Context, term string) ([]dto.ProductResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return uc.List(ctx, false)
	}
	list, err := uc.repo.SearchByNameOrTag(ctx, term)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// SearchByName busca apenas pelo nome.
func (uc *ProductUseCase) SearchByName(ctx context.Context, name string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.SearchByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// NearExpiry produtos com validade nos próximos days dias (inclui vencidos).
func (uc *ProductUseCase) NearExpiry(ctx context.Context, days int) ([]dto.ProductResponse, error) {
	if days < 0 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListNearExpiry(ctx, days)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Alerts produtos ativos com ao menos um alerta. windowDays nil usa a janela configurada.
func (uc *ProductUseCase) Alerts(ctx context.Context, windowDays *int) ([]dto.ProductAlertResponse, error) {
	window := uc.alertWindowDays
	if windowDays != nil {
		if *windowDays < 0 {
			return nil, domain.ErrInvalidInput
		}
		window = *windowDays
	}
	list, err := uc.repo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	today := uc.now()
	out := make([]dto.ProductAlertResponse, 0)
	for _, p := range list {
		labels := inventory.Alerts(p, today, window)
		if len(labels) == 0 {
			continue
		}
		item := dto.ProductAlertResponse{ProductResponse: *toProductResponse(p), Alerts: labels}
		if p.ExpiryDate != nil {
			days := inventory.DaysUntil(today, *p.ExpiryDate)
			item.DaysToExpire = &days
		}
		out = append(out, item)
	}
	return out, nil
}

// Deactivate exclusão lógica: o produto some das listagens mas o histórico continua íntegro.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !product.Active {
		return nil
	}
	product.Active = false
	product.UpdatedAt = uc.now()
	return uc.repo.Update(ctx, product)
}

// Delete exclusão física. Produto com movimentações, fiados ou prejuízos devolve ErrConflict.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// ListTags tags do produto.
func (uc *ProductUseCase) ListTags(ctx context.Context, productID string) ([]dto.TagResponse, error) {
	if err := uc.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	tags, err := uc.productTagRepo.ListTagsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toTagResponses(tags), nil
}

// SetTags substitui as tags do produto.
func (uc *ProductUseCase) SetTags(ctx context.Context, productID string, tagIDs []string) ([]dto.TagResponse, error) {
	if err := uc.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	ids, err := uc.checkTags(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	if err := uc.productTagRepo.ReplaceProductTags(ctx, productID, ids); err != nil {
		return nil, err
	}
	return uc.ListTags(ctx, productID)
}

// AddTag associa uma tag ao produto (idempotente).
func (uc *ProductUseCase) AddTag(ctx context.Context, productID, tagID string) error {
	if err := uc.ensureProduct(ctx, productID); err != nil {
		return err
	}
	if _, err := uc.checkTags(ctx, []string{tagID}); err != nil {
		return err
	}
	return uc.productTagRepo.Add(ctx, productID, tagID)
}

// RemoveTag desassocia uma tag do produto.
func (uc *ProductUseCase) RemoveTag(ctx context.Context, productID, tagID string) error {
	if err := uc.ensureProduct(ctx, productID); err != nil {
		return err
	}
	return uc.productTagRepo.Remove(ctx, productID, tagID)
}

func (uc *ProductUseCase) ensureProduct(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return nil
}

// checkTags valida que todas as tags existem e remove repetidas, preservando a ordem.
func (uc *ProductUseCase) checkTags(ctx context.Context, tagIDs []string) ([]string, error) {
	seen := make(map[string]bool, len(tagIDs))
	out := make([]string, 0, len(tagIDs))
	for _, id := range tagIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		tag, err := uc.tagRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			return nil, domain.ErrNotFound
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}

func parseExpiry(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := dto.ParseDate(*s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return t, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Quantity:      p.Quantity,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		ExpiryDate:    dto.FormatDate(p.ExpiryDate),
		MinStock:      p.MinStock,
		Active:        p.Active,
		Tags:          p.TagNames(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}
