package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chicvault/admin-api/internal/application/dto"
	"github.com/chicvault/admin-api/internal/application/usecase"
	"github.com/chicvault/admin-api/internal/domain"
	"github.com/chicvault/admin-api/internal/domain/entity"
)

// fakeUserRepo guarda usuarios en memoria y cuenta las escrituras.
type fakeUserRepo struct {
	users map[string]entity.AdminUser
	saves int
}

func newFakeUserRepo(seed ...entity.AdminUser) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]entity.AdminUser{}}
	for _, u := range seed {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Save(_ context.Context, u *entity.AdminUser) error {
	r.saves++
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id string) (*entity.AdminUser, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) List(_ context.Context) (map[string]entity.AdminUser, error) {
	out := map[string]entity.AdminUser{}
	for id, u := range r.users {
		out[id] = u
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func adminUser() entity.AdminUser {
	return entity.AdminUser{
		ID:       "u-admin",
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "secreto123",
		Role:     entity.RoleAdmin,
	}
}

func TestUserCreate_EmailDuplicadoNoEscribe(t *testing.T) {
	repo := newFakeUserRepo(adminUser())
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Otro",
		Email:    "admin@example.com",
		Password: "x",
		Role:     entity.RoleEditor,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Zero(t, repo.saves, "la verificación de email ocurre antes de escribir")
}

func TestUserCreate_SegundoAdminRechazado(t *testing.T) {
	repo := newFakeUserRepo(adminUser())
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Admin Dos",
		Email:    "admin2@example.com",
		Password: "x",
		Role:     entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrAdminLimit)
	assert.Zero(t, repo.saves)
}

func TestUserCreate_EditorConAdminExistenteEsValido(t *testing.T) {
	repo := newFakeUserRepo(adminUser())
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Editora",
		Email:    "editora@example.com",
		Password: "clave123",
		Role:     entity.RoleEditor,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID, "el id lo asigna la aplicación")
	assert.Equal(t, entity.RoleEditor, out.Role)
	saved := repo.users[out.ID]
	assert.Equal(t, "clave123", saved.Password, "el password se persiste tal cual")
}

func TestUserCreate_RolDesconocidoEsErrorDeValidacion(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "X",
		Email:    "x@example.com",
		Password: "x",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// La edición de usuarios hace merge: los campos no enviados y el password se
// conservan, a diferencia del reemplazo total del catálogo.
func TestUserUpdate_MergeConservaPassword(t *testing.T) {
	repo := newFakeUserRepo(adminUser())
	uc := usecase.NewUserUseCase(repo)

	nuevoNombre := "Administrador General"
	out, err := uc.Update(context.Background(), "u-admin", dto.UpdateUserRequest{
		Name: &nuevoNombre,
	})
	require.NoError(t, err)

	assert.Equal(t, "Administrador General", out.Name)
	assert.Equal(t, "admin@example.com", out.Email, "el email no enviado se conserva")
	saved := repo.users["u-admin"]
	assert.Equal(t, "secreto123", saved.Password, "el password nunca se toca en la edición")
	assert.Equal(t, entity.RoleAdmin, saved.Role)
}

func TestUserUpdate_IDAusenteEsNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	nombre := "X"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateUserRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserList_NuncaExponePasswords(t *testing.T) {
	repo := newFakeUserRepo(adminUser())
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	// UserResponse no tiene campo de password; se verifica el resto del contenido.
	got := out.Items["u-admin"]
	assert.Equal(t, "admin@example.com", got.Email)
	assert.Equal(t, entity.RoleAdmin, got.Role)
}

func TestUserDelete_IDAusenteNoEsError(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	assert.NoError(t, uc.Delete(context.Background(), "no-existe"))
}
