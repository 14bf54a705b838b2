package userValidator

import (
	"strings"

	"coursehub/middleware"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UpdateRole validates the role-change payload.
func UpdateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRoleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Role = strings.ToUpper(strings.TrimSpace(reqData.Role))

		if !models.ValidRole(reqData.Role) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"role": "Role must be one of ADMIN, INSTRUCTOR, STUDENT!",
			})
		}

		c.Locals("validatedRole", reqData)
		return c.Next()
	}
}
