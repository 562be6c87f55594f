package cache

import (
	"context"
	"time"
)

const revokedKeyPrefix = "revoked_session:"

// SessionBlacklist guarda en Redis los jti de sesiones cerradas hasta que el token
// expire por sí solo. La consulta falla en abierto: si Redis no responde, la sesión
// se considera vigente (el token sigue siendo válido criptográficamente).
type SessionBlacklist struct {
	cache *Client
}

// NewSessionBlacklist construye la lista de revocación sobre el cliente Redis.
func NewSessionBlacklist(cache *Client) *SessionBlacklist {
	return &SessionBlacklist{cache: cache}
}

// Revoke marca el jti como revocado durante ttl.
func (s *SessionBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // el token ya expiró, no hay nada que revocar
	}
	return s.cache.Set(ctx, revokedKeyPrefix+jti, []byte("1"), ttl)
}

// IsRevoked indica si el jti fue revocado.
func (s *SessionBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	data, err := s.cache.Get(ctx, revokedKeyPrefix+jti)
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}
