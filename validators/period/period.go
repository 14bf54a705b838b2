package periodValidator

import (
	"strings"
	"time"

	"coursehub/middleware"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
)

type PeriodRequest struct {
	PeriodName  string `json:"periodName"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`

	// Parsed by the validator
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

type PeriodCoursesRequest struct {
	CourseIDs []uint
}

// Save validates the create/update registration period payload. Start date
// must not fall after end date.
func Save() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PeriodRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.PeriodName) == "" {
			errors["periodName"] = "Period name is required!"
		}

		start, err := utils.ParseDate(reqData.StartDate)
		if err != nil || start == nil {
			errors["startDate"] = "Start date must be in yyyy-mm-dd format!"
		}

		end, err := utils.ParseDate(reqData.EndDate)
		if err != nil || end == nil {
			errors["endDate"] = "End date must be in yyyy-mm-dd format!"
		}

		if start != nil && end != nil && start.After(*end) {
			errors["endDate"] = "End date must not be before start date!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Start = *start
		reqData.End = *end

		c.Locals("validatedPeriod", reqData)
		return c.Next()
	}
}

// Courses validates the replace-period-courses payload, a bare JSON array of
// course ids.
func Courses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var courseIDs []uint
		if err := c.BodyParser(&courseIDs); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Request body must be an array of course ids!", nil)
		}

		c.Locals("validatedPeriodCourses", &PeriodCoursesRequest{CourseIDs: courseIDs})
		return c.Next()
	}
}
