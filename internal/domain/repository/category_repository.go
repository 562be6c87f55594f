package repository

import (
	"context"

	"github.com/chicvault/admin-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
// Save escribe el registro completo en categories/<key> (alta y edición usan la
// misma semántica de reemplazo total).
type CategoryRepository interface {
	Save(ctx context.Context, c *entity.Category) error
	Get(ctx context.Context, key string) (*entity.Category, error)
	List(ctx context.Context) (map[string]entity.Category, error)
	Delete(ctx context.Context, key string) error
}
