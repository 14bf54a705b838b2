package userRoutes

import (
	controllers "coursehub/controllers/user"
	"coursehub/middleware"
	validators "coursehub/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users", middleware.JWTMiddleware, middleware.RequireRoles())

	userGroup.Get("/", controllers.GetAllUsers)
	userGroup.Get("/:userId", controllers.GetUser)
	userGroup.Put("/:userId/role", validators.UpdateRole(), controllers.UpdateUserRole)
	userGroup.Delete("/:userId", controllers.DeleteUser)
}
