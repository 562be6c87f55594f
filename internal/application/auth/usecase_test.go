package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chicvault/admin-api/internal/application/auth"
	"github.com/chicvault/admin-api/internal/application/dto"
	"github.com/chicvault/admin-api/internal/domain"
	"github.com/chicvault/admin-api/internal/domain/entity"
	"github.com/chicvault/admin-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

type fakeUserRepo struct {
	users map[string]entity.AdminUser
}

func (r *fakeUserRepo) Save(_ context.Context, u *entity.AdminUser) error {
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
	return r.users, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

// fakeBlacklist registra las revocaciones en memoria.
type fakeBlacklist struct {
	revoked map[string]time.Duration
}

func (b *fakeBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	b.revoked[jti] = ttl
	return nil
}

func (b *fakeBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := b.revoked[jti]
	return ok, nil
}

func newSessionUC() (*auth.SessionUseCase, *fakeBlacklist) {
	repo := &fakeUserRepo{users: map[string]entity.AdminUser{
		"u1": {ID: "u1", Name: "Admin", Email: "admin@example.com", Password: "secreto123", Role: entity.RoleAdmin},
	}}
	blacklist := &fakeBlacklist{revoked: map[string]time.Duration{}}
	uc := auth.NewSessionUseCase(repo, blacklist, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "chicvault-test",
	})
	return uc, blacklist
}

func TestSignIn_CredencialesExactasEmitenToken(t *testing.T) {
	uc, _ := newSessionUC()

	out, err := uc.SignIn(context.Background(), dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID, "el token debe llevar jti para poder revocarlo")
	assert.Equal(t, "admin@example.com", out.User.Email)
}

func TestSignIn_PasswordIncorrectoEsInvalidCredentials(t *testing.T) {
	uc, _ := newSessionUC()

	_, err := uc.SignIn(context.Background(), dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "Secreto123", // la comparación es exacta, sin normalizar
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSignIn_EmailDesconocidoEsInvalidCredentials(t *testing.T) {
	uc, _ := newSessionUC()

	_, err := uc.SignIn(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSignIn_CamposVaciosSonValidacion(t *testing.T) {
	uc, _ := newSessionUC()
	_, err := uc.SignIn(context.Background(), dto.LoginRequest{Email: "admin@example.com"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSignOut_RevocaElJTIDelToken(t *testing.T) {
	uc, blacklist := newSessionUC()

	out, err := uc.SignIn(context.Background(), dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	require.NoError(t, uc.SignOut(context.Background(), out.Token))

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.True(t, uc.IsRevoked(context.Background(), claims.ID))
	ttl := blacklist.revoked[claims.ID]
	assert.Greater(t, ttl, time.Duration(0), "la revocación vive hasta que el token expire")
}

func TestSignOut_TokenIlegibleNoEsError(t *testing.T) {
	uc, blacklist := newSessionUC()
	assert.NoError(t, uc.SignOut(context.Background(), "token.invalido.aqui"))
	assert.Empty(t, blacklist.revoked)
}
