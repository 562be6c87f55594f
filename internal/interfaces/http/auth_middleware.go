package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chicvault/admin-api/internal/application/dto"
	"github.com/chicvault/admin-api/pkg/jwt"
)

// LocalSession clave de Locals donde el middleware deja la sesión autenticada.
const LocalSession = "session"

// Session es la identidad vigente de la petición, derivada del token firmado.
// El middleware confía en el token sin releer el usuario del almacén; un cambio
// de rol solo se refleja cuando el usuario vuelve a iniciar sesión.
type Session struct {
	UserID  string
	Email   string
	Role    string
	TokenID string
	Token   string
}

// RevocationChecker consulta si un jti fue revocado por un logout.
// Puede ser nil, en cuyo caso no hay revocación.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) bool
}

// AuthMiddleware valida el Bearer Token JWT y deja la Session en c.Locals.
func AuthMiddleware(jwtSecret string, revoked RevocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if revoked != nil && revoked.IsRevoked(c.Context(), claims.ID) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "REVOKED_TOKEN", Message: "la sesión fue cerrada"})
		}
		c.Locals(LocalSession, Session{
			UserID:  claims.UserID,
			Email:   claims.Email,
			Role:    claims.Role,
			TokenID: claims.ID,
			Token:   tokenString,
		})
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después del middleware de auth).
func GetSession(c *fiber.Ctx) Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return Session{}
	}
	s, _ := v.(Session)
	return s
}

// GetRole devuelve el rol de la sesión vigente.
func GetRole(c *fiber.Ctx) string {
	return GetSession(c).Role
}

// RequireRole autoriza la petición solo si el rol de la sesión está en la lista.
// Debe encadenarse después de AuthMiddleware.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range allowed {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta ruta"})
	}
}
