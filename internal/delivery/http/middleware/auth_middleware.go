package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"jobportal/internal/domain/identity"
	"jobportal/internal/pkg/jwt"
)

const (
	CtxEmailKey = "email"
	CtxRoleKey  = "role"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Require validates the bearer token and, when roles are given, checks
// the token's role against them. With no roles any authenticated account
// passes.
func (m *AuthMiddleware) Require(roles ...identity.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.Validate(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		role, ok := identity.ParseRole(claims.Role)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
		}

		if len(roles) > 0 && !roleAllowed(role, roles) {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}

		c.Locals(CtxEmailKey, claims.Email)
		c.Locals(CtxRoleKey, role)

		return c.Next()
	}
}

func roleAllowed(role identity.Role, allowed []identity.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
