package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chicvault/admin-api/internal/domain/entity"
	"github.com/chicvault/admin-api/internal/domain/repository"
	"github.com/chicvault/admin-api/internal/domain/store"
)

// El subárbol de usuarios conserva el nombre histórico "Admin-users" del almacén.
const adminUsersPath = "Admin-users"

var _ repository.AdminUserRepository = (*AdminUserRepo)(nil)

// AdminUserRepo implementación del puerto AdminUserRepository sobre el árbol remoto.
type AdminUserRepo struct {
	tree store.Tree
}

// NewAdminUserRepository construye el adaptador de persistencia para usuarios.
func NewAdminUserRepository(tree store.Tree) *AdminUserRepo {
	return &AdminUserRepo{tree: tree}
}

// Save escribe el registro completo en Admin-users/<id>.
func (r *AdminUserRepo) Save(ctx context.Context, u *entity.AdminUser) error {
	if err := r.tree.Set(ctx, adminUsersPath+"/"+u.ID, u); err != nil {
		return fmt.Errorf("guardar usuario: %w", err)
	}
	return nil
}

// Get obtiene un usuario por id; nil si no existe.
func (r *AdminUserRepo) Get(ctx context.Context, id string) (*entity.AdminUser, error) {
	raw, err := r.tree.Get(ctx, adminUsersPath+"/"+id)
	if err != nil {
		return nil, fmt.Errorf("leer usuario: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var u entity.AdminUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decodificar usuario %s: %w", id, err)
	}
	u.ID = id
	return &u, nil
}

// List devuelve todos los usuarios indexados por id (mapa vacío si no hay ninguno).
func (r *AdminUserRepo) List(ctx context.Context) (map[string]entity.AdminUser, error) {
	raw, err := r.tree.Get(ctx, adminUsersPath)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	out := map[string]entity.AdminUser{}
	if raw == nil {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decodificar usuarios: %w", err)
	}
	for id, u := range out {
		u.ID = id
		out[id] = u
	}
	return out, nil
}

// Delete elimina el usuario. Borrar un id ausente no es error.
func (r *AdminUserRepo) Delete(ctx context.Context, id string) error {
	if err := r.tree.Delete(ctx, adminUsersPath+"/"+id); err != nil {
		return fmt.Errorf("borrar usuario: %w", err)
	}
	return nil
}
