package middleware

import (
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles returns a middleware that allows the request only when the
// authenticated user's role is one of the given roles. Admins always pass.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: role not found", nil)
		}

		if role == models.RoleAdmin {
			return c.Next()
		}

		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}

// CurrentUser returns the authenticated user's id and role from the request
// context.
func CurrentUser(c *fiber.Ctx) (userID uint, role string) {
	if id, ok := c.Locals("userId").(uint); ok {
		userID = id
	}
	if r, ok := c.Locals("role").(string); ok {
		role = r
	}
	return userID, role
}
