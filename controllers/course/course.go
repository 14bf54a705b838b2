package courseController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseValidator "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func GetCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.First(&course, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("course_code = ?", reqData.CourseCode).First(&models.Course{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course code already exists!", nil)
	}

	instructorID := reqData.InstructorID

	// Instructors always create courses under their own profile
	if _, role := middleware.CurrentUser(c); role == models.RoleInstructor {
		if user, err := currentUserRecord(c); err == nil {
			ref := user.ReferenceID
			instructorID = &ref
		}
	}

	course := models.Course{
		CourseName:    reqData.CourseName,
		CourseCode:    reqData.CourseCode,
		Description:   reqData.Description,
		InstructorID:  instructorID,
		DurationWeeks: reqData.DurationWeeks,
		Price:         reqData.Price,
		MaxStudents:   reqData.MaxStudents,
		Status:        reqData.Status,
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !instructorOwnsCourse(c, &course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage your own courses!", nil)
	}

	// Course code must stay unique across the other courses
	var dup models.Course
	if err := db.Where("course_code = ? AND id <> ?", reqData.CourseCode, course.ID).First(&dup).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course code already exists!", nil)
	}

	course.CourseName = reqData.CourseName
	course.CourseCode = reqData.CourseCode
	course.Description = reqData.Description
	course.InstructorID = reqData.InstructorID
	course.DurationWeeks = reqData.DurationWeeks
	course.Price = reqData.Price
	course.MaxStudents = reqData.MaxStudents
	course.Status = reqData.Status

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course and all of its dependent rows.
func DeleteCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !instructorOwnsCourse(c, &course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage your own courses!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var assignmentIDs []uint
		if err := tx.Model(&models.Assignment{}).Where("course_id = ?", course.ID).
			Pluck("id", &assignmentIDs).Error; err != nil {
			return err
		}
		if len(assignmentIDs) > 0 {
			if err := tx.Where("assignment_id IN ?", assignmentIDs).Delete(&models.Submission{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Announcement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.PeriodCourse{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// currentUserRecord loads the authenticated user's row.
func currentUserRecord(c *fiber.Ctx) (*models.User, error) {
	userID, _ := middleware.CurrentUser(c)

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// instructorOwnsCourse reports whether the request may touch the course.
// Admins always may; instructors only when the course is assigned to them.
func instructorOwnsCourse(c *fiber.Ctx, course *models.Course) bool {
	_, role := middleware.CurrentUser(c)
	if role != models.RoleInstructor {
		return true
	}

	user, err := currentUserRecord(c)
	if err != nil {
		return false
	}

	return course.InstructorID != nil && *course.InstructorID == user.ReferenceID
}
