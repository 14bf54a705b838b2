package instructorRoutes

import (
	controllers "coursehub/controllers/instructor"
	"coursehub/middleware"
	validators "coursehub/validators/instructor"

	"github.com/gofiber/fiber/v2"
)

func SetupInstructorRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructors", middleware.JWTMiddleware)

	instructorGroup.Get("/", controllers.GetAllInstructors)
	instructorGroup.Get("/:id", controllers.GetInstructor)
	instructorGroup.Post("/", middleware.RequireRoles(), validators.Save(), controllers.CreateInstructor)
	instructorGroup.Put("/:id", middleware.RequireRoles(), validators.Save(), controllers.UpdateInstructor)
	instructorGroup.Delete("/:id", middleware.RequireRoles(), controllers.DeleteInstructor)
}
