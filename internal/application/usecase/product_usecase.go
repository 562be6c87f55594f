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

// ProductUseCase casos de uso CRUD para productos. Toda escritura reemplaza el
// registro completo: el llamador debe reenviar los campos que no cambian o se
// pierden (semántica "set" del almacén, deliberada).
type ProductUseCase struct {
	repo     repository.ProductRepository
	blobs    store.Blob
	resolver *images.Resolver
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, blobs store.Blob, resolver *images.Resolver) *ProductUseCase {
	return &ProductUseCase{repo: repo, blobs: blobs, resolver: resolver}
}

// Create crea un producto bajo su categoría. Requiere nombre, categoría y precio;
// la clave se deriva del nombre y es única solo dentro de la categoría.
func (uc *ProductUseCase) Create(ctx context.Context, categoryKey string, in dto.SaveProductRequest, img *ImageUpload) (*dto.ProductResponse, error) {
	if categoryKey == "" || in.Name == "" || in.Price == nil {
		return nil, domain.ErrValidation
	}
	p, err := uc.buildProduct(ctx, deriveKey(in.Name), in, img)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, categoryKey, p); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, p), nil
}

// Update edita un producto escribiendo el registro completo en la misma ruta.
// Un campo omitido queda en su valor cero: no hay merge parcial.
func (uc *ProductUseCase) Update(ctx context.Context, categoryKey, key string, in dto.SaveProductRequest, img *ImageUpload) (*dto.ProductResponse, error) {
	if categoryKey == "" || key == "" || in.Name == "" || in.Price == nil {
		return nil, domain.ErrValidation
	}
	p, err := uc.buildProduct(ctx, key, in, img)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, categoryKey, p); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, p), nil
}

// Delete elimina un producto. Borrar una clave ausente no es error.
func (uc *ProductUseCase) Delete(ctx context.Context, categoryKey, key string) error {
	if categoryKey == "" || key == "" {
		return domain.ErrValidation
	}
	return uc.repo.Delete(ctx, categoryKey, key)
}

// ListByCategory devuelve los productos de una categoría con imágenes resueltas.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, categoryKey string) (*dto.ProductListResponse, error) {
	group, err := uc.repo.ListByCategory(ctx, categoryKey)
	if err != nil {
		return nil, err
	}
	items := make(map[string]dto.ProductResponse, len(group))
	for key, p := range group {
		p.ImageURL = uc.resolver.Resolve(ctx, p.ImageURL)
		items[key] = *toProductResponse(&p)
	}
	return &dto.ProductListResponse{Category: categoryKey, Items: items}, nil
}

// ListAll devuelve el subárbol completo de productos con imágenes resueltas.
func (uc *ProductUseCase) ListAll(ctx context.Context) (*dto.ProductTreeResponse, error) {
	tree, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	resolved := uc.resolver.ResolveProducts(ctx, tree)
	items := make(map[string]map[string]dto.ProductResponse, len(resolved))
	for categoryKey, group := range resolved {
		out := make(map[string]dto.ProductResponse, len(group))
		for key, p := range group {
			out[key] = *toProductResponse(&p)
		}
		items[categoryKey] = out
	}
	return &dto.ProductTreeResponse{Items: items}, nil
}

// buildProduct arma el registro completo a partir de la petición, subiendo la
// imagen primero si la hay.
func (uc *ProductUseCase) buildProduct(ctx context.Context, key string, in dto.SaveProductRequest, img *ImageUpload) (*entity.Product, error) {
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
	return &entity.Product{
		Key:         key,
		Name:        in.Name,
		Price:       entity.Price{Amount: *in.Price, Currency: entity.CurrencyCAD},
		Description: in.Description,
		Available:   in.Available,
		Rating:      in.Rating,
		Reviews:     in.Reviews,
		Stock:       in.Stock,
		Tags:        tags,
		ImageURL:    imageURL,
	}, nil
}

func (uc *ProductUseCase) toResponse(ctx context.Context, p *entity.Product) *dto.ProductResponse {
	out := *p
	out.ImageURL = uc.resolver.Resolve(ctx, p.ImageURL)
	return toProductResponse(&out)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Key:         p.Key,
		Name:        p.Name,
		Price:       dto.PriceResponse{Amount: p.Price.Amount, Currency: p.Price.Currency},
		Description: p.Description,
		Available:   p.Available,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Stock:       p.Stock,
		Tags:        p.Tags,
		ImageURL:    p.ImageURL,
	}
}
