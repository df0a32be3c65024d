package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/sokobo/storefront/pkg/util"
)

// RequireAuthenticated ensures the caller carries a valid session.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireAdministrator ensures the caller is authenticated and holds the
// admin role. Runs before any handler body, so a denied request never
// reaches a domain service.
func RequireAdministrator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !principal.IsAdmin() {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}
