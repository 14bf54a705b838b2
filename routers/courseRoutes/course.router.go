package courseRoutes

import (
	controllers "coursehub/controllers/course"
	"coursehub/middleware"
	"coursehub/models"
	validators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses", middleware.JWTMiddleware)

	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/:id", controllers.GetCourse)
	courseGroup.Post("/", middleware.RequireRoles(models.RoleInstructor), validators.Save(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.RequireRoles(models.RoleInstructor), validators.Save(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.RequireRoles(models.RoleInstructor), controllers.DeleteCourse)
}
