package dashboardController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns the headline counters for the dashboard page.
func GetStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCourses, totalStudents, totalAssignments, totalEnrollments int64
	db.Model(&models.Course{}).Count(&totalCourses)
	db.Model(&models.Student{}).Count(&totalStudents)
	db.Model(&models.Assignment{}).Count(&totalAssignments)
	db.Model(&models.Enrollment{}).Count(&totalEnrollments)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"totalCourses":     totalCourses,
		"totalStudents":    totalStudents,
		"totalAssignments": totalAssignments,
		"totalEnrollments": totalEnrollments,
	})
}
