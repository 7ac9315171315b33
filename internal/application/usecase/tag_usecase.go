package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// TagUseCase casos de uso de tags (categorias livres de produto).
type TagUseCase struct {
	repo           repository.TagRepository
	productTagRepo repository.ProductTagRepository
}

// NewTagUseCase constrói o caso de uso.
func NewTagUseCase(repo repository.TagRepository, productTagRepo repository.ProductTagRepository) *TagUseCase {
	return &TagUseCase{repo: repo, productTagRepo: productTagRepo}
}

// Create cria uma tag. Nome vazio devolve ErrInvalidInput; repetido, ErrDuplicateName.
func (uc *TagUseCase) Create(ctx context.Context, in dto.CreateTagRequest) (*dto.TagResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateName
	}
	tag := &entity.Tag{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	if err := uc.repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return toTagResponse(tag), nil
}

// List todas as tags por nome.
func (uc *TagUseCase) List(ctx context.Context) ([]dto.TagResponse, error) {
	tags, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toTagResponses(tags), nil
}

// Delete remove a tag e suas associações.
func (uc *TagUseCase) Delete(ctx context.Context, id string) error {
	tag, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tag == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// ProductsByTag produtos associados à tag.
func (uc *TagUseCase) ProductsByTag(ctx context.Context, tagID string) ([]dto.ProductResponse, error) {
	tag, err := uc.repo.GetByID(ctx, tagID)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.productTagRepo.ListProductsByTag(ctx, tagID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

func toTagResponse(t *entity.Tag) *dto.TagResponse {
	return &dto.TagResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}
}

func toTagResponses(tags []*entity.Tag) []dto.TagResponse {
	out := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, *toTagResponse(t))
	}
	return out
}
