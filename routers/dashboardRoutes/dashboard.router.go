package dashboardRoutes

import (
	controllers "coursehub/controllers/dashboard"
	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboardGroup := app.Group("/dashboard", middleware.JWTMiddleware)

	dashboardGroup.Get("/stats", controllers.GetStats)
}
