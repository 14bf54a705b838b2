package studentController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	studentValidator "coursehub/validators/student"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAllStudents(c *fiber.Ctx) error {
	var students []models.Student
	if err := database.Database.Db.Order("created_at desc").Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", students)
}

func GetStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	var student models.Student
	if err := database.Database.Db.First(&student, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student fetched successfully!", student)
}

func CreateStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStudent").(*studentValidator.StudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.Student{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	dateOfBirth, _ := utils.ParseDate(reqData.DateOfBirth)
	enrollmentDate, _ := utils.ParseDate(reqData.EnrollmentDate)

	student := models.Student{
		FullName:       reqData.FullName,
		Email:          reqData.Email,
		Phone:          reqData.Phone,
		DateOfBirth:    dateOfBirth,
		Address:        reqData.Address,
		EnrollmentDate: enrollmentDate,
	}

	if err := db.Create(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Student created successfully!", student)
}

func UpdateStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	reqData, ok := c.Locals("validatedStudent").(*studentValidator.StudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.First(&student, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var dup models.Student
	if err := db.Where("email = ? AND id <> ?", reqData.Email, student.ID).First(&dup).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	dateOfBirth, _ := utils.ParseDate(reqData.DateOfBirth)
	enrollmentDate, _ := utils.ParseDate(reqData.EnrollmentDate)

	student.FullName = reqData.FullName
	student.Email = reqData.Email
	student.Phone = reqData.Phone
	student.DateOfBirth = dateOfBirth
	student.Address = reqData.Address
	if enrollmentDate != nil {
		student.EnrollmentDate = enrollmentDate
	}

	if err := db.Save(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student updated successfully!", student)
}

// DeleteStudent removes a student with their enrollments, submissions and any
// linked user account.
func DeleteStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	db := database.Database.Db

	var student models.Student
	if err := db.First(&student, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", student.ID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", student.ID).Delete(&models.Submission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reference_id = ? AND role = ?", student.ID, models.RoleStudent).
			Delete(&models.User{}).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student deleted successfully!", nil)
}
