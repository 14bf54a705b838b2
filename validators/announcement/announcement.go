package announcementValidator

import (
	"strings"

	"coursehub/middleware"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

type AnnouncementRequest struct {
	CourseID     uint   `json:"courseId"`
	InstructorID uint   `json:"instructorId"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Priority     string `json:"priority"`
}

// Save validates the create/update announcement payload.
func Save() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AnnouncementRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course id is required!"
		}
		if reqData.InstructorID == 0 {
			errors["instructorId"] = "Instructor id is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if reqData.Priority == "" {
			reqData.Priority = models.PriorityNormal
		} else if !models.ValidPriority(reqData.Priority) {
			errors["priority"] = "Priority must be one of normal, important, urgent!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnnouncement", reqData)
		return c.Next()
	}
}
