package periodRoutes

import (
	controllers "coursehub/controllers/period"
	"coursehub/middleware"
	validators "coursehub/validators/period"

	"github.com/gofiber/fiber/v2"
)

func SetupPeriodRoutes(app *fiber.App) {
	periodGroup := app.Group("/registration-periods", middleware.JWTMiddleware)

	periodGroup.Get("/", controllers.GetAllPeriods)
	periodGroup.Get("/active", controllers.GetActivePeriods)
	periodGroup.Get("/:id/courses", controllers.GetPeriodCourses)
	periodGroup.Get("/:id/details", controllers.GetPeriodDetails)
	periodGroup.Get("/:id", controllers.GetPeriod)
	periodGroup.Post("/", middleware.RequireRoles(), validators.Save(), controllers.CreatePeriod)
	periodGroup.Put("/:id/courses", middleware.RequireRoles(), validators.Courses(), controllers.UpdatePeriodCourses)
	periodGroup.Put("/:id", middleware.RequireRoles(), validators.Save(), controllers.UpdatePeriod)
	periodGroup.Delete("/:id", middleware.RequireRoles(), controllers.DeletePeriod)
}
