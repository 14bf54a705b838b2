package authController

import (
	"log"
	"time"

	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	authValidator "coursehub/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Login checks credentials and returns a signed session token together with
// the display name resolved from the linked profile row.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("username = ?", reqData.Username).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Username does not exist!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Wrong password!", nil)
	}

	now := time.Now()
	user.LastLogin = &now
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}

	tracking := models.LoginTracking{
		UserID:    user.ID,
		IPAddress: ip,
		Device:    c.Get("User-Agent"),
		Timestamp: now,
	}
	if err := db.Create(&tracking).Error; err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token":       token,
		"username":    user.Username,
		"role":        user.Role,
		"fullName":    resolveFullName(db, user.Role, user.ReferenceID),
		"userId":      user.ID,
		"referenceId": user.ReferenceID,
	})
}

// Register creates a student profile and its user account in one transaction.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if username or email already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}
	if err := db.Where("email = ?", reqData.Email).First(&models.Student{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	dateOfBirth, _ := utils.ParseDate(reqData.DateOfBirth)
	now := time.Now()

	var student models.Student
	var user models.User

	err = db.Transaction(func(tx *gorm.DB) error {
		student = models.Student{
			FullName:       reqData.FullName,
			Email:          reqData.Email,
			Phone:          reqData.Phone,
			DateOfBirth:    dateOfBirth,
			Address:        reqData.Address,
			EnrollmentDate: &now,
		}
		if err := tx.Create(&student).Error; err != nil {
			return err
		}

		user = models.User{
			Username:    reqData.Username,
			Password:    string(hashedPassword),
			Email:       reqData.Email,
			Role:        models.RoleStudent,
			ReferenceID: student.ID,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		log.Printf("Error registering user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	go func(email, name string) {
		if err := utils.SendWelcomeEmail(email, name); err != nil {
			log.Printf("Error sending welcome email: %v", err)
		}
	}(student.Email, student.FullName)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"token":       token,
		"username":    user.Username,
		"role":        user.Role,
		"fullName":    student.FullName,
		"userId":      user.ID,
		"referenceId": user.ReferenceID,
	})
}

// resolveFullName looks up the display name behind a user's reference id.
func resolveFullName(db *gorm.DB, role string, referenceID uint) string {
	if referenceID == 0 {
		return "Admin"
	}

	switch role {
	case models.RoleStudent:
		var student models.Student
		if err := db.First(&student, referenceID).Error; err == nil {
			return student.FullName
		}
		return "Student"
	case models.RoleInstructor:
		var instructor models.Instructor
		if err := db.First(&instructor, referenceID).Error; err == nil {
			return instructor.FullName
		}
		return "Instructor"
	}
	return "User"
}
