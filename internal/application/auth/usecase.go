package auth

import (
	"context"
	"time"

	"github.com/chicvault/admin-api/internal/application/dto"
	"github.com/chicvault/admin-api/internal/domain"
	"github.com/chicvault/admin-api/internal/domain/repository"
	"github.com/chicvault/admin-api/pkg/jwt"
)

// Blacklist puerto de la lista de revocación de sesiones (Redis en producción).
// IsRevoked falla en abierto: ante un error de infraestructura la sesión se
// considera vigente.
type Blacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionUseCase es el gate de sesión: SignedOut -> SignedIn(role).
// El token JWT es la identidad persistida; al reanudar, el middleware la acepta
// sin revalidar contra el almacén (confía en el estado local firmado).
type SessionUseCase struct {
	users     repository.AdminUserRepository
	blacklist Blacklist
	jwtCfg    JWTConfig
}

// NewSessionUseCase construye el gate de sesión.
func NewSessionUseCase(users repository.AdminUserRepository, blacklist Blacklist, jwtCfg JWTConfig) *SessionUseCase {
	return &SessionUseCase{users: users, blacklist: blacklist, jwtCfg: jwtCfg}
}

// SignIn busca un usuario cuyo email y password coincidan exactamente con los
// enviados (igualdad en texto plano, así están almacenados) y emite el token de
// sesión. Sin coincidencia, la sesión sigue cerrada y se señala
// ErrInvalidCredentials.
func (uc *SessionUseCase) SignIn(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == in.Email && u.Password == in.Password {
			token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Email, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
			if err != nil {
				return nil, err
			}
			return &dto.LoginResponse{
				Token: token,
				User:  dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
			}, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// SignOut revoca el token de la sesión: su jti entra a la lista de revocación
// hasta que el token expire por sí solo. Un token ya inválido no es error.
func (uc *SessionUseCase) SignOut(ctx context.Context, tokenString string) error {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, tokenString)
	if err != nil {
		return nil
	}
	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	return uc.blacklist.Revoke(ctx, claims.ID, ttl)
}

// IsRevoked indica si el jti de un token fue revocado por un SignOut.
func (uc *SessionUseCase) IsRevoked(ctx context.Context, jti string) bool {
	revoked, _ := uc.blacklist.IsRevoked(ctx, jti)
	return revoked
}
