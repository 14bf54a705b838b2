package enrollmentRoutes

import (
	controllers "coursehub/controllers/enrollment"
	"coursehub/middleware"
	"coursehub/models"
	validators "coursehub/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/enrollments", middleware.JWTMiddleware)

	enrollmentGroup.Get("/", controllers.GetAllEnrollments)
	enrollmentGroup.Get("/student/:studentId", controllers.GetEnrollmentsByStudent)
	enrollmentGroup.Get("/course/:courseId", controllers.GetEnrollmentsByCourse)
	enrollmentGroup.Get("/:id", controllers.GetEnrollment)
	enrollmentGroup.Post("/", middleware.RequireRoles(models.RoleStudent), validators.Save(), controllers.CreateEnrollment)
	enrollmentGroup.Put("/:id", middleware.RequireRoles(models.RoleInstructor), validators.Save(), controllers.UpdateEnrollment)
	enrollmentGroup.Delete("/:id", middleware.RequireRoles(), controllers.DeleteEnrollment)
}
