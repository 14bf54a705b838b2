package instructorController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	instructorValidator "coursehub/validators/instructor"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAllInstructors(c *fiber.Ctx) error {
	var instructors []models.Instructor
	if err := database.Database.Db.Order("created_at desc").Find(&instructors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully!", instructors)
}

func GetInstructor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid instructor id!", nil)
	}

	var instructor models.Instructor
	if err := database.Database.Db.First(&instructor, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor fetched successfully!", instructor)
}

func CreateInstructor(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInstructor").(*instructorValidator.InstructorRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.Instructor{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	instructor := models.Instructor{
		FullName:       reqData.FullName,
		Email:          reqData.Email,
		Phone:          reqData.Phone,
		Specialization: reqData.Specialization,
		Bio:            reqData.Bio,
	}

	if err := db.Create(&instructor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create instructor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Instructor created successfully!", instructor)
}

func UpdateInstructor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid instructor id!", nil)
	}

	reqData, ok := c.Locals("validatedInstructor").(*instructorValidator.InstructorRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var instructor models.Instructor
	if err := db.First(&instructor, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	var dup models.Instructor
	if err := db.Where("email = ? AND id <> ?", reqData.Email, instructor.ID).First(&dup).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	instructor.FullName = reqData.FullName
	instructor.Email = reqData.Email
	instructor.Phone = reqData.Phone
	instructor.Specialization = reqData.Specialization
	instructor.Bio = reqData.Bio

	if err := db.Save(&instructor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update instructor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor updated successfully!", instructor)
}

// DeleteInstructor removes an instructor, detaches their courses and drops
// their announcements and any linked user account.
func DeleteInstructor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid instructor id!", nil)
	}

	db := database.Database.Db

	var instructor models.Instructor
	if err := db.First(&instructor, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Course{}).Where("instructor_id = ?", instructor.ID).
			Update("instructor_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("instructor_id = ?", instructor.ID).Delete(&models.Announcement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reference_id = ? AND role = ?", instructor.ID, models.RoleInstructor).
			Delete(&models.User{}).Error; err != nil {
			return err
		}
		return tx.Delete(&instructor).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete instructor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor deleted successfully!", nil)
}
