package periodController

import (
	"time"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	periodValidator "coursehub/validators/period"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllPeriods lists every registration period, newest first. Statuses are
// refreshed before listing so a period that rolled over since the last cron
// run is never served stale.
func GetAllPeriods(c *fiber.Ctx) error {
	utils.RefreshPeriodStatuses()

	var periods []models.RegistrationPeriod
	if err := database.Database.Db.Order("start_date desc").Find(&periods).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registration periods!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration periods fetched successfully!", periods)
}

// GetActivePeriods lists the periods whose date range covers today.
func GetActivePeriods(c *fiber.Ctx) error {
	utils.RefreshPeriodStatuses()

	var periods []models.RegistrationPeriod
	if err := database.Database.Db.Where("status = ?", models.PeriodActive).
		Order("start_date desc").Find(&periods).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registration periods!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Active registration periods fetched successfully!", periods)
}

func GetPeriod(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid period id!", nil)
	}

	var period models.RegistrationPeriod
	if err := database.Database.Db.First(&period, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration period not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration period fetched successfully!", period)
}

func CreatePeriod(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPeriod").(*periodValidator.PeriodRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	period := models.RegistrationPeriod{
		PeriodName:  reqData.PeriodName,
		Description: reqData.Description,
		StartDate:   reqData.Start,
		EndDate:     reqData.End,
		Status:      models.ComputePeriodStatus(reqData.Start, reqData.End, time.Now()),
	}

	if err := database.Database.Db.Create(&period).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create registration period!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration period created successfully!", period)
}

func UpdatePeriod(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid period id!", nil)
	}

	reqData, ok := c.Locals("validatedPeriod").(*periodValidator.PeriodRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var period models.RegistrationPeriod
	if err := db.First(&period, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration period not found!", nil)
	}

	period.PeriodName = reqData.PeriodName
	period.Description = reqData.Description
	period.StartDate = reqData.Start
	period.EndDate = reqData.End
	period.Status = models.ComputePeriodStatus(reqData.Start, reqData.End, time.Now())

	if err := db.Save(&period).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update registration period!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration period updated successfully!", period)
}

// DeletePeriod removes a period together with its course links.
func DeletePeriod(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid period id!", nil)
	}

	db := database.Database.Db

	var period models.RegistrationPeriod
	if err := db.First(&period, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration period not found!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("period_id = ?", period.ID).Delete(&models.PeriodCourse{}).Error; err != nil {
			return err
		}
		return tx.Delete(&period).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete registration period!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration period deleted successfully!", nil)
}

// GetPeriodCourses lists the courses open for registration in a period.
func GetPeriodCourses(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid period id!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.RegistrationPeriod{}, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration period not found!", nil)
	}

	courses, _, err := periodCourses(uint(id))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch period courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Period courses fetched successfully!", courses)
}

// UpdatePeriodCourses atomically replaces the set of courses linked to a
// period. Old links and new links swap in one transaction so a partially
// applied replacement is never observable.
func UpdatePeriodCourses(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid period id!", nil)
	}

	reqData, ok := c.Locals("validatedPeriodCourses").(*periodValidator.PeriodCoursesRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var period models.RegistrationPeriod
	if err := db.First(&period, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration period not found!", nil)
	}

	for _, courseID := range reqData.CourseIDs {
		if err := db.First(&models.Course{}, courseID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("period_id = ?", period.ID).Delete(&models.PeriodCourse{}).Error; err != nil {
			return err
		}
		for _, courseID := range reqData.CourseIDs {
			if err := tx.Create(&models.PeriodCourse{PeriodID: period.ID, CourseID: courseID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update period courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Period courses updated successfully!", nil)
}

// GetPeriodDetails returns a period together with its courses and their ids.
func GetPeriodDetails(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid period id!", nil)
	}

	db := database.Database.Db

	var period models.RegistrationPeriod
	if err := db.First(&period, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Registration period not found!", nil)
	}

	courses, courseIDs, err := periodCourses(period.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch period courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Period details fetched successfully!", fiber.Map{
		"period":    period,
		"courses":   courses,
		"courseIds": courseIDs,
	})
}

// periodCourses resolves the course rows linked to a period.
func periodCourses(periodID uint) ([]models.Course, []uint, error) {
	db := database.Database.Db

	var courseIDs []uint
	if err := db.Model(&models.PeriodCourse{}).Where("period_id = ?", periodID).
		Pluck("course_id", &courseIDs).Error; err != nil {
		return nil, nil, err
	}

	courses := make([]models.Course, 0, len(courseIDs))
	if len(courseIDs) > 0 {
		if err := db.Where("id IN ?", courseIDs).Find(&courses).Error; err != nil {
			return nil, nil, err
		}
	}

	return courses, courseIDs, nil
}
