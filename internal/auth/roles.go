package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/domain"
)

// RequireAuth ensures the caller is authenticated.
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := m.principal(c); err != nil {
			m.record(OutcomeUnauthorized)
			return err
		}
		m.record(OutcomeAuthorized)
		return c.Next()
	}
}

// RequirePermission ensures the caller's role grants action.
func (m *AuthMiddleware) RequirePermission(action domain.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.principal(c)
		if err != nil {
			m.record(OutcomeUnauthorized)
			return err
		}
		if err := CheckPermission(claims, action); err != nil {
			m.logger.Info("permission denied",
				zap.Int64("user_id", claims.UserID),
				zap.String("role", string(claims.Role)),
				zap.String("permission", string(action)))
			m.record(OutcomeForbidden)
			return err
		}
		m.record(OutcomeAuthorized)
		return c.Next()
	}
}

// RequireRole ensures the caller holds one of the allowed roles.
func (m *AuthMiddleware) RequireRole(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.principal(c)
		if err != nil {
			m.record(OutcomeUnauthorized)
			return err
		}
		if err := CheckAnyRole(claims, allowed...); err != nil {
			m.logger.Info("role denied",
				zap.Int64("user_id", claims.UserID),
				zap.String("role", string(claims.Role)))
			m.record(OutcomeForbidden)
			return err
		}
		m.record(OutcomeAuthorized)
		return c.Next()
	}
}
