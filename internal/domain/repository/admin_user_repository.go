package repository

import (
	"context"

	"github.com/chicvault/admin-api/internal/domain/entity"
)

// AdminUserRepository define el puerto de persistencia para AdminUser
// (subárbol Admin-users/<id>; el id lo asigna la aplicación al crear).
type AdminUserRepository interface {
	Save(ctx context.Context, u *entity.AdminUser) error
	Get(ctx context.Context, id string) (*entity.AdminUser, error)
	List(ctx context.Context) (map[string]entity.AdminUser, error)
	Delete(ctx context.Context, id string) error
}
