package announcementRoutes

import (
	controllers "coursehub/controllers/announcement"
	"coursehub/middleware"
	"coursehub/models"
	validators "coursehub/validators/announcement"

	"github.com/gofiber/fiber/v2"
)

func SetupAnnouncementRoutes(app *fiber.App) {
	announcementGroup := app.Group("/announcements", middleware.JWTMiddleware)

	announcementGroup.Get("/", controllers.GetAllAnnouncements)
	announcementGroup.Get("/course/:courseId", controllers.GetAnnouncementsByCourse)
	announcementGroup.Get("/:id", controllers.GetAnnouncement)
	announcementGroup.Post("/", middleware.RequireRoles(models.RoleInstructor), validators.Save(), controllers.CreateAnnouncement)
	announcementGroup.Put("/:id", middleware.RequireRoles(models.RoleInstructor), validators.Save(), controllers.UpdateAnnouncement)
	announcementGroup.Delete("/:id", middleware.RequireRoles(models.RoleInstructor), controllers.DeleteAnnouncement)
}
