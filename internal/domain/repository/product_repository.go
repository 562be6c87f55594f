package repository

import (
	"context"

	"github.com/chicvault/admin-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
// Los productos viven bajo products/<categoryKey>/<key>; la clave es única solo
// dentro de su categoría.
type ProductRepository interface {
	Save(ctx context.Context, categoryKey string, p *entity.Product) error
	Get(ctx context.Context, categoryKey, key string) (*entity.Product, error)
	ListByCategory(ctx context.Context, categoryKey string) (map[string]entity.Product, error)
	ListAll(ctx context.Context) (map[string]map[string]entity.Product, error)
	Delete(ctx context.Context, categoryKey, key string) error
}
