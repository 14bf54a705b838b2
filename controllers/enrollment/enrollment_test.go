package enrollmentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	enrollmentRoutes "coursehub/routers/enrollmentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()
	db := database.ConnectTestDb()

	app := fiber.New()
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	return app, db
}

// newStudent creates a student profile together with its login user and
// returns the student row and a bearer token.
func newStudent(t *testing.T, db *gorm.DB, name, email string) (models.Student, string) {
	t.Helper()

	student := models.Student{FullName: name, Email: email}
	require.NoError(t, db.Create(&student).Error)

	user := models.User{
		Username:    email,
		Password:    "unused",
		Email:       email,
		Role:        models.RoleStudent,
		ReferenceID: student.ID,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	require.NoError(t, err)
	return student, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (*http.Response, apiResponse) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestEnrollAndDuplicate(t *testing.T) {
	app, db := setupApp(t)

	student, token := newStudent(t, db, "Iris Vogel", "iris@example.com")
	course := models.Course{CourseName: "Go Basics", CourseCode: "ENR-GO1", MaxStudents: 30}
	require.NoError(t, db.Create(&course).Error)

	payload := fiber.Map{"studentId": student.ID, "courseId": course.ID}

	resp, body := doJSON(t, app, http.MethodPost, "/enrollments/", token, payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, json.Unmarshal(body.Data, &enrollment))
	assert.Equal(t, models.CompletionEnrolled, enrollment.CompletionStatus)
	assert.Equal(t, models.PaymentPending, enrollment.PaymentStatus)
	assert.NotNil(t, enrollment.EnrollmentDate)

	resp, body = doJSON(t, app, http.MethodPost, "/enrollments/", token, payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Student is already enrolled in this course!", body.Message)

	// Round trip through the per-student listing
	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/enrollments/student/%d", student.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []models.Enrollment
	require.NoError(t, json.Unmarshal(body.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, enrollment.ID, listed[0].ID)
	assert.Equal(t, course.ID, listed[0].CourseID)
}

func TestEnrollCourseFull(t *testing.T) {
	app, db := setupApp(t)

	course := models.Course{CourseName: "Tiny Seminar", CourseCode: "ENR-SEM1", MaxStudents: 1}
	require.NoError(t, db.Create(&course).Error)

	first, firstToken := newStudent(t, db, "Felix Adam", "felix@example.com")
	second, secondToken := newStudent(t, db, "Greta Blum", "greta@example.com")

	resp, _ := doJSON(t, app, http.MethodPost, "/enrollments/", firstToken,
		fiber.Map{"studentId": first.ID, "courseId": course.ID})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/enrollments/", secondToken,
		fiber.Map{"studentId": second.ID, "courseId": course.ID})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Course is full!", body.Message)
}

func TestDroppedSeatFreesCapacity(t *testing.T) {
	app, db := setupApp(t)

	course := models.Course{CourseName: "One Seat", CourseCode: "ENR-SEAT1", MaxStudents: 1}
	require.NoError(t, db.Create(&course).Error)

	first, _ := newStudent(t, db, "Hugo Lenz", "hugo@example.com")
	dropped := models.Enrollment{
		StudentID:        first.ID,
		CourseID:         course.ID,
		CompletionStatus: models.CompletionDropped,
		PaymentStatus:    models.PaymentRefunded,
	}
	require.NoError(t, db.Create(&dropped).Error)

	second, token := newStudent(t, db, "Ida Moser", "ida@example.com")
	resp, _ := doJSON(t, app, http.MethodPost, "/enrollments/", token,
		fiber.Map{"studentId": second.ID, "courseId": course.ID})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestStudentCannotEnrollOthers(t *testing.T) {
	app, db := setupApp(t)

	course := models.Course{CourseName: "Ethics", CourseCode: "ENR-ETH1"}
	require.NoError(t, db.Create(&course).Error)

	victim, _ := newStudent(t, db, "Jana Roth", "jana@example.com")
	_, token := newStudent(t, db, "Karl Frey", "karl@example.com")

	resp, _ := doJSON(t, app, http.MethodPost, "/enrollments/", token,
		fiber.Map{"studentId": victim.ID, "courseId": course.ID})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestEnrollUnknownCourse(t *testing.T) {
	app, db := setupApp(t)

	student, token := newStudent(t, db, "Lena Wirth", "lena@example.com")

	resp, _ := doJSON(t, app, http.MethodPost, "/enrollments/", token,
		fiber.Map{"studentId": student.ID, "courseId": 99999})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
