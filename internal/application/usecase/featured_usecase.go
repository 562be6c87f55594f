package usecase

import (
	"context"

	"github.com/chicvault/admin-api/internal/application/dto"
	"github.com/chicvault/admin-api/internal/application/images"
	"github.com/chicvault/admin-api/internal/domain"
	"github.com/chicvault/admin-api/internal/domain/entity"
	"github.com/chicvault/admin-api/internal/domain/repository"
	"github.com/chicvault/admin-api/internal/domain/store"
)

// FeaturedUseCase casos de uso sobre la secuencia de destacados. Las entradas se
// direccionan por posición: cada mutación lee la secuencia vigente, la modifica y
// la reescribe completa. Dos mutaciones concurrentes parten de la misma secuencia
// previa y la segunda pisa a la primera; el riesgo es inherente al almacenamiento
// posicional y se conserva tal cual.
type FeaturedUseCase struct {
	repo     repository.FeaturedProductRepository
	blobs    store.Blob
	resolver *images.Resolver
}

// NewFeaturedUseCase construye el caso de uso.
func NewFeaturedUseCase(repo repository.FeaturedProductRepository, blobs store.Blob, resolver *images.Resolver) *FeaturedUseCase {
	return &FeaturedUseCase{repo: repo, blobs: blobs, resolver: resolver}
}

// Create agrega un destacado al final de la secuencia.
func (uc *FeaturedUseCase) Create(ctx context.Context, in dto.SaveFeaturedRequest, img *ImageUpload) (*dto.FeaturedResponse, error) {
	if in.Name == "" || in.Price == nil {
		return nil, domain.ErrValidation
	}
	fp, err := uc.buildFeatured(ctx, in, img)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items = append(items, *fp)
	if err := uc.repo.ReplaceAll(ctx, items); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, len(items)-1, fp), nil
}

// Update reemplaza la entrada en la posición dada.
func (uc *FeaturedUseCase) Update(ctx context.Context, position int, in dto.SaveFeaturedRequest, img *ImageUpload) (*dto.FeaturedResponse, error) {
	if in.Name == "" || in.Price == nil {
		return nil, domain.ErrValidation
	}
	fp, err := uc.buildFeatured(ctx, in, img)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if position < 0 || position >= len(items) {
		return nil, domain.ErrInvalidPosition
	}
	items[position] = *fp
	if err := uc.repo.ReplaceAll(ctx, items); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, position, fp), nil
}

// Delete quita la entrada en la posición dada y reescribe la secuencia. La
// posición se evalúa contra la secuencia vigente al leer: un borrado concurrente
// puede dejarla apuntando a otra entrada (o fuera de rango) sin que se detecte.
func (uc *FeaturedUseCase) Delete(ctx context.Context, position int) error {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return err
	}
	if position < 0 || position >= len(items) {
		return domain.ErrInvalidPosition
	}
	items = append(items[:position], items[position+1:]...)
	return uc.repo.ReplaceAll(ctx, items)
}

// List devuelve la secuencia completa con las imágenes resueltas.
func (uc *FeaturedUseCase) List(ctx context.Context) (*dto.FeaturedListResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resolved := uc.resolver.ResolveFeatured(ctx, items)
	out := make([]dto.FeaturedResponse, len(resolved))
	for i := range resolved {
		out[i] = *featuredResponse(i, &resolved[i])
	}
	return &dto.FeaturedListResponse{Items: out}, nil
}

func (uc *FeaturedUseCase) buildFeatured(ctx context.Context, in dto.SaveFeaturedRequest, img *ImageUpload) (*entity.FeaturedProduct, error) {
	imageURL := in.ImageURL
	if img != nil {
		url, err := uploadImage(ctx, uc.blobs, img)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return &entity.FeaturedProduct{
		Product: entity.Product{
			Name:        in.Name,
			Price:       entity.Price{Amount: *in.Price, Currency: entity.CurrencyCAD},
			Description: in.Description,
			Available:   in.Available,
			Rating:      in.Rating,
			Reviews:     in.Reviews,
			Stock:       in.Stock,
			Tags:        tags,
			ImageURL:    imageURL,
		},
		Category: in.Category,
	}, nil
}

func (uc *FeaturedUseCase) toResponse(ctx context.Context, position int, fp *entity.FeaturedProduct) *dto.FeaturedResponse {
	out := *fp
	out.ImageURL = uc.resolver.Resolve(ctx, fp.ImageURL)
	return featuredResponse(position, &out)
}

func featuredResponse(position int, fp *entity.FeaturedProduct) *dto.FeaturedResponse {
	return &dto.FeaturedResponse{
		Position:    position,
		Name:        fp.Name,
		Category:    fp.Category,
		Price:       dto.PriceResponse{Amount: fp.Price.Amount, Currency: fp.Price.Currency},
		Description: fp.Description,
		Available:   fp.Available,
		Rating:      fp.Rating,
		Reviews:     fp.Reviews,
		Stock:       fp.Stock,
		Tags:        fp.Tags,
		ImageURL:    fp.ImageURL,
	}
}
