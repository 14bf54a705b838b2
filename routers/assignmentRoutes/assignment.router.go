package assignmentRoutes

import (
	controllers "coursehub/controllers/assignment"
	"coursehub/middleware"
	"coursehub/models"
	validators "coursehub/validators/assignment"

	"github.com/gofiber/fiber/v2"
)

func SetupAssignmentRoutes(app *fiber.App) {
	assignmentGroup := app.Group("/assignments", middleware.JWTMiddleware)

	assignmentGroup.Get("/", controllers.GetAllAssignments)
	assignmentGroup.Get("/course/:courseId", controllers.GetAssignmentsByCourse)
	assignmentGroup.Get("/:id", controllers.GetAssignment)
	assignmentGroup.Post("/", middleware.RequireRoles(models.RoleInstructor), validators.Save(), controllers.CreateAssignment)
	assignmentGroup.Put("/:id", middleware.RequireRoles(models.RoleInstructor), validators.Save(), controllers.UpdateAssignment)
	assignmentGroup.Delete("/:id", middleware.RequireRoles(models.RoleInstructor), controllers.DeleteAssignment)
}
