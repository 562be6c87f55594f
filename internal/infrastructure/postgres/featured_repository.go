package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chicvault/admin-api/internal/domain/entity"
	"github.com/chicvault/admin-api/internal/domain/repository"
	"github.com/chicvault/admin-api/internal/domain/store"
)

const featuredPath = "featuredProducts"

var _ repository.FeaturedProductRepository = (*FeaturedRepo)(nil)

// FeaturedRepo implementación del puerto FeaturedProductRepository. Los destacados
// son una única secuencia ordenada en featuredProducts: toda mutación la reescribe
// completa, por lo que dos escritores concurrentes pueden pisarse (riesgo aceptado
// del direccionamiento posicional).
type FeaturedRepo struct {
	tree store.Tree
}

// NewFeaturedRepository construye el adaptador de persistencia para destacados.
func NewFeaturedRepository(tree store.Tree) *FeaturedRepo {
	return &FeaturedRepo{tree: tree}
}

// List devuelve la secuencia completa de destacados (slice vacío si no hay datos).
func (r *FeaturedRepo) List(ctx context.Context) ([]entity.FeaturedProduct, error) {
	raw, err := r.tree.Get(ctx, featuredPath)
	if err != nil {
		return nil, fmt.Errorf("listar destacados: %w", err)
	}
	if raw == nil {
		return []entity.FeaturedProduct{}, nil
	}
	var items []entity.FeaturedProduct
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decodificar destacados: %w", err)
	}
	if items == nil {
		items = []entity.FeaturedProduct{}
	}
	return items, nil
}

// ReplaceAll reescribe la secuencia completa.
func (r *FeaturedRepo) ReplaceAll(ctx context.Context, items []entity.FeaturedProduct) error {
	if items == nil {
		items = []entity.FeaturedProduct{}
	}
	if err := r.tree.Set(ctx, featuredPath, items); err != nil {
		return fmt.Errorf("guardar destacados: %w", err)
	}
	return nil
}
