package courseValidator

import (
	"strings"

	"coursehub/middleware"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

type CourseRequest struct {
	CourseName    string  `json:"courseName"`
	CourseCode    string  `json:"courseCode"`
	Description   string  `json:"description"`
	InstructorID  *uint   `json:"instructorId"`
	DurationWeeks int     `json:"durationWeeks"`
	Price         float64 `json:"price"`
	MaxStudents   int     `json:"maxStudents"`
	Status        string  `json:"status"`
}

// Save validates the create/update course payload.
func Save() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseName) == "" {
			errors["courseName"] = "Course name is required!"
		}

		if strings.TrimSpace(reqData.CourseCode) == "" {
			errors["courseCode"] = "Course code is required!"
		}

		if reqData.DurationWeeks < 0 {
			errors["durationWeeks"] = "Duration must not be negative!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}

		if reqData.MaxStudents < 0 {
			errors["maxStudents"] = "Max students must not be negative!"
		}

		if reqData.Status == "" {
			reqData.Status = models.CourseActive
		} else if !models.ValidCourseStatus(reqData.Status) {
			errors["status"] = "Status must be one of active, inactive, completed!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
