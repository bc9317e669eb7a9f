package middleware

import (
	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/gofiber/fiber/v2"
)

// RequireRoles layers a capability check on top of Protected: 401 when no
// principal is attached, 403 when the principal's role is not in the allowed
// set.
func RequireRoles(roles ...models.AdminRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := Principal(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Authentication required"))
		}
		for _, role := range roles {
			if principal.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Error("Insufficient permissions"))
	}
}
