package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chicvault/admin-api/internal/domain/entity"
	"github.com/chicvault/admin-api/internal/domain/repository"
	"github.com/chicvault/admin-api/internal/domain/store"
)

const categoriesPath = "categories"

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre el árbol remoto.
type CategoryRepo struct {
	tree store.Tree
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(tree store.Tree) *CategoryRepo {
	return &CategoryRepo{tree: tree}
}

// Save escribe el registro completo en categories/<key> (alta y edición).
func (r *CategoryRepo) Save(ctx context.Context, c *entity.Category) error {
	if err := r.tree.Set(ctx, categoriesPath+"/"+c.Key, c); err != nil {
		return fmt.Errorf("guardar categoría: %w", err)
	}
	return nil
}

// Get obtiene una categoría por clave; nil si no existe.
func (r *CategoryRepo) Get(ctx context.Context, key string) (*entity.Category, error) {
	raw, err := r.tree.Get(ctx, categoriesPath+"/"+key)
	if err != nil {
		return nil, fmt.Errorf("leer categoría: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var c entity.Category
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decodificar categoría %s: %w", key, err)
	}
	c.Key = key
	return &c, nil
}

// List devuelve todas las categorías indexadas por clave. Un subárbol ausente
// proyecta a un mapa vacío, nunca nil.
func (r *CategoryRepo) List(ctx context.Context) (map[string]entity.Category, error) {
	raw, err := r.tree.Get(ctx, categoriesPath)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	out := map[string]entity.Category{}
	if raw == nil {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decodificar categorías: %w", err)
	}
	for key, c := range out {
		c.Key = key
		out[key] = c
	}
	return out, nil
}

// Delete elimina la categoría. Borrar una clave ausente no es error.
func (r *CategoryRepo) Delete(ctx context.Context, key string) error {
	if err := r.tree.Delete(ctx, categoriesPath+"/"+key); err != nil {
		return fmt.Errorf("borrar categoría: %w", err)
	}
	return nil
}
