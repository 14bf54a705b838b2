package announcementController

import (
	"log"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	announcementValidator "coursehub/validators/announcement"

	"github.com/gofiber/fiber/v2"
)

func GetAllAnnouncements(c *fiber.Ctx) error {
	var announcements []models.Announcement
	if err := database.Database.Db.Preload("Course").Preload("Instructor").
		Order("created_at desc").Find(&announcements).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully!", announcements)
}

func GetAnnouncement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid announcement id!", nil)
	}

	var announcement models.Announcement
	if err := database.Database.Db.Preload("Course").Preload("Instructor").
		First(&announcement, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement fetched successfully!", announcement)
}

func GetAnnouncementsByCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var announcements []models.Announcement
	if err := database.Database.Db.Where("course_id = ?", courseID).Preload("Instructor").
		Order("created_at desc").Find(&announcements).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully!", announcements)
}

// CreateAnnouncement posts a course announcement. Urgent announcements are
// mailed to every enrolled student in the background.
func CreateAnnouncement(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAnnouncement").(*announcementValidator.AnnouncementRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.First(&models.Instructor{}, reqData.InstructorID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	if !instructorOwnsCourse(c, &course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only post announcements for your own courses!", nil)
	}

	announcement := models.Announcement{
		CourseID:     reqData.CourseID,
		InstructorID: reqData.InstructorID,
		Title:        reqData.Title,
		Content:      reqData.Content,
		Priority:     reqData.Priority,
	}

	if err := db.Create(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create announcement!", nil)
	}

	if announcement.Priority == models.PriorityUrgent {
		go notifyEnrolledStudents(course, announcement)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Announcement created successfully!", announcement)
}

func UpdateAnnouncement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid announcement id!", nil)
	}

	reqData, ok := c.Locals("validatedAnnouncement").(*announcementValidator.AnnouncementRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var announcement models.Announcement
	if err := db.First(&announcement, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
	}

	var course models.Course
	if err := db.First(&course, announcement.CourseID).Error; err == nil {
		if !instructorOwnsCourse(c, &course) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage announcements for your own courses!", nil)
		}
	}

	announcement.CourseID = reqData.CourseID
	announcement.InstructorID = reqData.InstructorID
	announcement.Title = reqData.Title
	announcement.Content = reqData.Content
	announcement.Priority = reqData.Priority

	if err := db.Save(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement updated successfully!", announcement)
}

func DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid announcement id!", nil)
	}

	db := database.Database.Db

	var announcement models.Announcement
	if err := db.First(&announcement, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
	}

	var course models.Course
	if err := db.First(&course, announcement.CourseID).Error; err == nil {
		if !instructorOwnsCourse(c, &course) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage announcements for your own courses!", nil)
		}
	}

	if err := db.Delete(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement deleted successfully!", nil)
}

// notifyEnrolledStudents emails every student enrolled in the course.
func notifyEnrolledStudents(course models.Course, announcement models.Announcement) {
	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("course_id = ? AND completion_status <> ?", course.ID, models.CompletionDropped).
		Preload("Student").Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments for announcement email: %v", err)
		return
	}

	for _, enrollment := range enrollments {
		if enrollment.Student == nil {
			continue
		}
		if err := utils.SendAnnouncementEmail(enrollment.Student.Email, course.CourseName,
			announcement.Title, announcement.Content); err != nil {
			log.Printf("Error sending announcement email to %s: %v", enrollment.Student.Email, err)
		}
	}
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
