package enrollmentValidator

import (
	"coursehub/middleware"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

type EnrollmentRequest struct {
	StudentID        uint     `json:"studentId"`
	CourseID         uint     `json:"courseId"`
	EnrollmentDate   string   `json:"enrollmentDate"`
	CompletionStatus string   `json:"completionStatus"`
	Grade            *float64 `json:"grade"`
	PaymentStatus    string   `json:"paymentStatus"`
}

// Save validates the create/update enrollment payload.
func Save() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.StudentID == 0 {
			errors["studentId"] = "Student id is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course id is required!"
		}

		if reqData.CompletionStatus == "" {
			reqData.CompletionStatus = models.CompletionEnrolled
		} else if !models.ValidCompletionStatus(reqData.CompletionStatus) {
			errors["completionStatus"] = "Completion status must be one of enrolled, in_progress, completed, dropped!"
		}

		if reqData.PaymentStatus == "" {
			reqData.PaymentStatus = models.PaymentPending
		} else if !models.ValidPaymentStatus(reqData.PaymentStatus) {
			errors["paymentStatus"] = "Payment status must be one of pending, paid, refunded!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}
