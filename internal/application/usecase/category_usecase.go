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

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	blobs    store.Blob
	resolver *images.Resolver
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, blobs store.Blob, resolver *images.Resolver) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, blobs: blobs, resolver: resolver}
}

// Create crea una categoría. La clave se deriva del nombre y queda fija; si la
// petición trae imagen se sube primero y su URL sustituye al campo imageUrl.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.SaveCategoryRequest, img *ImageUpload) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrValidation
	}
	imageURL := in.ImageURL
	if img != nil {
		url, err := uploadImage(ctx, uc.blobs, img)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}
	c := &entity.Category{
		Key:      deriveKey(in.Name),
		Name:     in.Name,
		ImageURL: imageURL,
	}
	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, c), nil
}

// Update edita una categoría existente escribiendo el registro completo.
// La clave no se recalcula aunque cambie el nombre.
func (uc *CategoryUseCase) Update(ctx context.Context, key string, in dto.SaveCategoryRequest, img *ImageUpload) (*dto.CategoryResponse, error) {
	if key == "" || in.Name == "" {
		return nil, domain.ErrValidation
	}
	imageURL := in.ImageURL
	if img != nil {
		url, err := uploadImage(ctx, uc.blobs, img)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}
	c := &entity.Category{
		Key:      key,
		Name:     in.Name,
		ImageURL: imageURL,
	}
	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, c), nil
}

// Delete elimina una categoría por clave. Borrar una clave ausente no es error.
func (uc *CategoryUseCase) Delete(ctx context.Context, key string) error {
	return uc.repo.Delete(ctx, key)
}

// List devuelve todas las categorías con las imágenes resueltas.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resolved := uc.resolver.ResolveCategories(ctx, list)
	items := make(map[string]dto.CategoryResponse, len(resolved))
	for key, c := range resolved {
		items[key] = dto.CategoryResponse{Key: key, Name: c.Name, ImageURL: c.ImageURL}
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

func (uc *CategoryUseCase) toResponse(ctx context.Context, c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Key:      c.Key,
		Name:     c.Name,
		ImageURL: uc.resolver.Resolve(ctx, c.ImageURL),
	}
}
