package submissionValidator

import (
	"strings"

	"coursehub/middleware"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

type SubmissionRequest struct {
	AssignmentID uint   `json:"assignmentId"`
	StudentID    uint   `json:"studentId"`
	Content      string `json:"content"`
	Attachment   string `json:"attachment"`
}

type GradeRequest struct {
	Score  *int   `json:"score"`
	Status string `json:"status"`
}

// Save validates the create submission payload.
func Save() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmissionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.AssignmentID == 0 {
			errors["assignmentId"] = "Assignment id is required!"
		}
		if reqData.StudentID == 0 {
			errors["studentId"] = "Student id is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" && reqData.Attachment == "" {
			errors["content"] = "Content or attachment is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// Grade validates the grading payload.
func Grade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GradeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Score == nil {
			errors["score"] = "Score is required!"
		} else if *reqData.Score < 0 {
			errors["score"] = "Score must not be negative!"
		}

		if reqData.Status == "" {
			reqData.Status = models.SubmissionGraded
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}
