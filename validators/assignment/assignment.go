package assignmentValidator

import (
	"strings"

	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
)

type AssignmentRequest struct {
	CourseID    uint   `json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	MaxScore    int    `json:"maxScore"`
	Type        string `json:"type"`
	Status      string `json:"status"`
}

// Save validates the create/update assignment payload.
func Save() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssignmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course id is required!"
		}

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if _, err := utils.ParseDate(reqData.DueDate); err != nil {
			errors["dueDate"] = "Due date must be in yyyy-mm-dd format!"
		}

		if reqData.MaxScore < 0 {
			errors["maxScore"] = "Max score must not be negative!"
		}

		if reqData.Type == "" {
			reqData.Type = models.AssignmentHomework
		} else if !models.ValidAssignmentType(reqData.Type) {
			errors["type"] = "Type must be one of homework, quiz, project!"
		}

		if reqData.Status == "" {
			reqData.Status = models.AssignmentPublished
		} else if reqData.Status != models.AssignmentPublished && reqData.Status != models.AssignmentDraft {
			errors["status"] = "Status must be published or draft!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}
