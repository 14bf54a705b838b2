package submissionController

import (
	"time"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	submissionValidator "coursehub/validators/submission"

	"github.com/gofiber/fiber/v2"
)

const uploadDir = "./uploads"

func GetAllSubmissions(c *fiber.Ctx) error {
	var submissions []models.Submission
	if err := database.Database.Db.Preload("Assignment").Preload("Student").
		Order("created_at desc").Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}

func GetSubmission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission id!", nil)
	}

	var submission models.Submission
	if err := database.Database.Db.Preload("Assignment").Preload("Student").
		First(&submission, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission fetched successfully!", submission)
}

func GetSubmissionsByAssignment(c *fiber.Ctx) error {
	assignmentID, err := c.ParamsInt("assignmentId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assignment id!", nil)
	}

	var submissions []models.Submission
	if err := database.Database.Db.Where("assignment_id = ?", assignmentID).Preload("Student").
		Order("created_at desc").Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}

func GetSubmissionsByStudent(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	var submissions []models.Submission
	if err := database.Database.Db.Where("student_id = ?", studentID).Preload("Assignment").
		Order("created_at desc").Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}

// CreateSubmission records a student's submission. A submission arriving
// after the assignment's due date is marked late.
func CreateSubmission(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubmission").(*submissionValidator.SubmissionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Students may only submit for themselves
	userID, role := middleware.CurrentUser(c)
	if role == models.RoleStudent {
		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}
		if user.ReferenceID != reqData.StudentID {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only submit your own work!", nil)
		}
	}

	var assignment models.Assignment
	if err := db.First(&assignment, reqData.AssignmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	if err := db.First(&models.Student{}, reqData.StudentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var existing models.Submission
	if err := db.Where("assignment_id = ? AND student_id = ?", reqData.AssignmentID, reqData.StudentID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Assignment already submitted!", nil)
	}

	now := time.Now()
	status := models.SubmissionSubmitted
	if assignment.DueDate != nil && now.After(assignment.DueDate.AddDate(0, 0, 1)) {
		status = models.SubmissionLate
	}

	submission := models.Submission{
		AssignmentID:  reqData.AssignmentID,
		StudentID:     reqData.StudentID,
		Content:       reqData.Content,
		Attachment:    reqData.Attachment,
		Status:        status,
		SubmittedDate: &now,
	}

	if err := db.Create(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create submission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Submission created successfully!", submission)
}

// UpdateSubmission lets a student rework their own submission before it has
// been graded.
func UpdateSubmission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission id!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*submissionValidator.SubmissionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var submission models.Submission
	if err := db.First(&submission, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	userID, role := middleware.CurrentUser(c)
	if role == models.RoleStudent {
		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}
		if user.ReferenceID != submission.StudentID {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own submission!", nil)
		}
		if submission.Status == models.SubmissionGraded {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Graded submissions cannot be updated!", nil)
		}
	}

	submission.Content = reqData.Content
	if reqData.Attachment != "" {
		submission.Attachment = reqData.Attachment
	}

	if err := db.Save(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update submission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission updated successfully!", submission)
}

// GradeSubmission sets a submission's score.
func GradeSubmission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission id!", nil)
	}

	reqData, ok := c.Locals("validatedGrade").(*submissionValidator.GradeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var submission models.Submission
	if err := db.First(&submission, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	var assignment models.Assignment
	if err := db.First(&assignment, submission.AssignmentID).Error; err == nil {
		if reqData.Score != nil && *reqData.Score > assignment.MaxScore {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Score exceeds the assignment max score!", nil)
		}
	}

	submission.Score = reqData.Score
	submission.Status = models.SubmissionGraded

	if err := db.Save(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade submission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission graded successfully!", submission)
}

func DeleteSubmission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission id!", nil)
	}

	result := database.Database.Db.Delete(&models.Submission{}, id)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete submission!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission deleted successfully!", nil)
}

// UploadAttachment stores a multipart attachment and returns its reference
// for use in a submission payload.
func UploadAttachment(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Attachment file is required!", nil)
	}

	path, err := utils.SaveUploadedFile(file, uploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store attachment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attachment uploaded successfully!", fiber.Map{
		"attachment": path,
		"url":        utils.GetFileURL(path),
	})
}
