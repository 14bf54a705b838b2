package studentRoutes

import (
	controllers "coursehub/controllers/student"
	"coursehub/middleware"
	validators "coursehub/validators/student"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/students", middleware.JWTMiddleware)

	studentGroup.Get("/", controllers.GetAllStudents)
	studentGroup.Get("/:id", controllers.GetStudent)
	studentGroup.Post("/", middleware.RequireRoles(), validators.Save(), controllers.CreateStudent)
	studentGroup.Put("/:id", middleware.RequireRoles(), validators.Save(), controllers.UpdateStudent)
	studentGroup.Delete("/:id", middleware.RequireRoles(), controllers.DeleteStudent)
}
