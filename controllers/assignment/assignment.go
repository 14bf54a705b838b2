package assignmentController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	assignmentValidator "coursehub/validators/assignment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAllAssignments(c *fiber.Ctx) error {
	var assignments []models.Assignment
	if err := database.Database.Db.Preload("Course").Order("created_at desc").
		Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", assignments)
}

func GetAssignment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assignment id!", nil)
	}

	var assignment models.Assignment
	if err := database.Database.Db.Preload("Course").First(&assignment, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment fetched successfully!", assignment)
}

func GetAssignmentsByCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var assignments []models.Assignment
	if err := database.Database.Db.Where("course_id = ?", courseID).
		Order("due_date asc").Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", assignments)
}

func CreateAssignment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAssignment").(*assignmentValidator.AssignmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !instructorOwnsCourse(c, &course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage assignments for your own courses!", nil)
	}

	dueDate, _ := utils.ParseDate(reqData.DueDate)

	assignment := models.Assignment{
		CourseID:    reqData.CourseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		DueDate:     dueDate,
		MaxScore:    reqData.MaxScore,
		Type:        reqData.Type,
		Status:      reqData.Status,
	}
	if assignment.MaxScore == 0 {
		assignment.MaxScore = 100
	}

	if err := db.Create(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully!", assignment)
}

func UpdateAssignment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assignment id!", nil)
	}

	reqData, ok := c.Locals("validatedAssignment").(*assignmentValidator.AssignmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var assignment models.Assignment
	if err := db.First(&assignment, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	var course models.Course
	if err := db.First(&course, assignment.CourseID).Error; err == nil {
		if !instructorOwnsCourse(c, &course) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage assignments for your own courses!", nil)
		}
	}

	dueDate, _ := utils.ParseDate(reqData.DueDate)

	assignment.CourseID = reqData.CourseID
	assignment.Title = reqData.Title
	assignment.Description = reqData.Description
	assignment.DueDate = dueDate
	assignment.MaxScore = reqData.MaxScore
	assignment.Type = reqData.Type
	assignment.Status = reqData.Status

	if err := db.Save(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment updated successfully!", assignment)
}

// DeleteAssignment removes an assignment and its submissions.
func DeleteAssignment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assignment id!", nil)
	}

	db := database.Database.Db

	var assignment models.Assignment
	if err := db.First(&assignment, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	var course models.Course
	if err := db.First(&course, assignment.CourseID).Error; err == nil {
		if !instructorOwnsCourse(c, &course) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage assignments for your own courses!", nil)
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", assignment.ID).Delete(&models.Submission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&assignment).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment deleted successfully!", nil)
}

// instructorOwnsCourse reports whether the request may touch the course.
func instructorOwnsCourse(c *fiber.Ctx, course *models.Course) bool {
	userID, role := middleware.CurrentUser(c)
	if role != models.RoleInstructor {
		return true
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return false
	}

	return course.InstructorID != nil && *course.InstructorID == user.ReferenceID
}
