package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chicvault/admin-api/internal/domain/entity"
	"github.com/chicvault/admin-api/internal/domain/repository"
	"github.com/chicvault/admin-api/internal/domain/store"
)

const productsPath = "products"

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el árbol remoto.
// Los productos viven en products/<categoryKey>/<key>.
type ProductRepo struct {
	tree store.Tree
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(tree store.Tree) *ProductRepo {
	return &ProductRepo{tree: tree}
}

// Save escribe el registro completo del producto (reemplazo total, sin merge:
// los campos que el llamador no reenvía se pierden).
func (r *ProductRepo) Save(ctx context.Context, categoryKey string, p *entity.Product) error {
	if err := r.tree.Set(ctx, productPath(categoryKey, p.Key), p); err != nil {
		return fmt.Errorf("guardar producto: %w", err)
	}
	return nil
}

// Get obtiene un producto por categoría y clave; nil si no existe.
func (r *ProductRepo) Get(ctx context.Context, categoryKey, key string) (*entity.Product, error) {
	raw, err := r.tree.Get(ctx, productPath(categoryKey, key))
	if err != nil {
		return nil, fmt.Errorf("leer producto: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var p entity.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decodificar producto %s: %w", key, err)
	}
	p.Key = key
	return &p, nil
}

// ListByCategory devuelve los productos de una categoría indexados por clave
// (mapa vacío si no hay ninguno).
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryKey string) (map[string]entity.Product, error) {
	raw, err := r.tree.Get(ctx, productsPath+"/"+categoryKey)
	if err != nil {
		return nil, fmt.Errorf("listar productos de %s: %w", categoryKey, err)
	}
	out := map[string]entity.Product{}
	if raw == nil {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decodificar productos de %s: %w", categoryKey, err)
	}
	for key, p := range out {
		p.Key = key
		out[key] = p
	}
	return out, nil
}

// ListAll devuelve el subárbol completo: categoría -> clave -> producto.
func (r *ProductRepo) ListAll(ctx context.Context) (map[string]map[string]entity.Product, error) {
	raw, err := r.tree.Get(ctx, productsPath)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	out := map[string]map[string]entity.Product{}
	if raw == nil {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decodificar productos: %w", err)
	}
	for categoryKey, group := range out {
		for key, p := range group {
			p.Key = key
			group[key] = p
		}
		out[categoryKey] = group
	}
	return out, nil
}

// Delete elimina el producto. Borrar una clave ausente no es error.
func (r *ProductRepo) Delete(ctx context.Context, categoryKey, key string) error {
	if err := r.tree.Delete(ctx, productPath(categoryKey, key)); err != nil {
		return fmt.Errorf("borrar producto: %w", err)
	}
	return nil
}

func productPath(categoryKey, key string) string {
	return productsPath + "/" + categoryKey + "/" + key
}
