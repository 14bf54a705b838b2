package enrollmentController

import (
	"time"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	enrollmentValidator "coursehub/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func GetAllEnrollments(c *fiber.Ctx) error {
	var enrollments []models.Enrollment
	if err := database.Database.Db.Preload("Student").Preload("Course").
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

func GetEnrollment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Preload("Student").Preload("Course").
		First(&enrollment, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

func GetEnrollmentsByStudent(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("student_id = ?", studentID).Preload("Course").
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

func GetEnrollmentsByCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("course_id = ?", courseID).Preload("Student").
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// CreateEnrollment enrolls a student in a course. Rejects duplicates and
// courses that already reached their max student count.
func CreateEnrollment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.EnrollmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Students may only enroll themselves
	userID, role := middleware.CurrentUser(c)
	if role == models.RoleStudent {
		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}
		if user.ReferenceID != reqData.StudentID {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only enroll yourself!", nil)
		}
	}

	if err := db.First(&models.Student{}, reqData.StudentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing models.Enrollment
	if err := db.Where("student_id = ? AND course_id = ?", reqData.StudentID, reqData.CourseID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student is already enrolled in this course!", nil)
	}

	if course.MaxStudents > 0 {
		var active int64
		db.Model(&models.Enrollment{}).
			Where("course_id = ? AND completion_status <> ?", course.ID, models.CompletionDropped).
			Count(&active)
		if active >= int64(course.MaxStudents) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course is full!", nil)
		}
	}

	enrollmentDate, _ := utils.ParseDate(reqData.EnrollmentDate)
	if enrollmentDate == nil {
		now := time.Now()
		enrollmentDate = &now
	}

	enrollment := models.Enrollment{
		StudentID:        reqData.StudentID,
		CourseID:         reqData.CourseID,
		EnrollmentDate:   enrollmentDate,
		CompletionStatus: reqData.CompletionStatus,
		Grade:            reqData.Grade,
		PaymentStatus:    reqData.PaymentStatus,
	}

	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

func UpdateEnrollment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.EnrollmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.First(&enrollment, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	enrollmentDate, _ := utils.ParseDate(reqData.EnrollmentDate)
	if enrollmentDate != nil {
		enrollment.EnrollmentDate = enrollmentDate
	}
	enrollment.CompletionStatus = reqData.CompletionStatus
	enrollment.Grade = reqData.Grade
	enrollment.PaymentStatus = reqData.PaymentStatus

	if err := db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated successfully!", enrollment)
}

func DeleteEnrollment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	result := database.Database.Db.Delete(&models.Enrollment{}, id)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete enrollment!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment deleted successfully!", nil)
}
