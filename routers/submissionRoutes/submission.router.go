package submissionRoutes

import (
	controllers "coursehub/controllers/submission"
	"coursehub/middleware"
	"coursehub/models"
	validators "coursehub/validators/submission"

	"github.com/gofiber/fiber/v2"
)

func SetupSubmissionRoutes(app *fiber.App) {
	submissionGroup := app.Group("/submissions", middleware.JWTMiddleware)

	submissionGroup.Get("/", middleware.RequireRoles(models.RoleInstructor), controllers.GetAllSubmissions)
	submissionGroup.Get("/assignment/:assignmentId", middleware.RequireRoles(models.RoleInstructor), controllers.GetSubmissionsByAssignment)
	submissionGroup.Get("/student/:studentId", controllers.GetSubmissionsByStudent)
	submissionGroup.Get("/:id", controllers.GetSubmission)
	submissionGroup.Post("/", middleware.RequireRoles(models.RoleStudent), validators.Save(), controllers.CreateSubmission)
	submissionGroup.Post("/upload", middleware.RequireRoles(models.RoleStudent), controllers.UploadAttachment)
	submissionGroup.Put("/:id/grade", middleware.RequireRoles(models.RoleInstructor), validators.Grade(), controllers.GradeSubmission)
	submissionGroup.Put("/:id", validators.Save(), controllers.UpdateSubmission)
	submissionGroup.Delete("/:id", middleware.RequireRoles(), controllers.DeleteSubmission)
}
