package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/chicvault/admin-api/internal/application/dto"
	"github.com/chicvault/admin-api/internal/domain"
	"github.com/chicvault/admin-api/internal/domain/entity"
	"github.com/chicvault/admin-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios del panel (solo para sesiones admin; el gate
// de rol vive en la capa HTTP).
type UserUseCase struct {
	repo repository.AdminUserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.AdminUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario con id asignado por la aplicación. Antes de escribir
// verifica con una lectura que el email no exista y que no haya ya un admin si el
// rol pedido es admin. Ambas verificaciones son consultivas: dos creaciones
// concurrentes pueden pasarlas a la vez, no hay aislamiento transaccional.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrValidation
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrValidation
	}

	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == in.Email {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	if in.Role == entity.RoleAdmin {
		for _, u := range users {
			if u.Role == entity.RoleAdmin {
				return nil, domain.ErrAdminLimit
			}
		}
	}

	user := &entity.AdminUser{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	}
	if err := uc.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update edita nombre, email o rol con semántica de merge: los campos no enviados
// y el password se conservan.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrValidation
		}
		user.Role = *in.Role
	}
	if err := uc.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario por id. Borrar un id ausente no es error.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List devuelve todos los usuarios, sin passwords.
func (uc *UserUseCase) List(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make(map[string]dto.UserResponse, len(users))
	for id, u := range users {
		items[id] = *toUserResponse(&u)
	}
	return &dto.UserListResponse{Items: items}, nil
}

func toUserResponse(u *entity.AdminUser) *dto.UserResponse {
	return &dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
