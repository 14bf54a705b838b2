package submissionController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	submissionRoutes "coursehub/routers/submissionRoutes"

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
	submissionRoutes.SetupSubmissionRoutes(app)
	return app, db
}

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

func adminToken(t *testing.T, db *gorm.DB, username string) string {
	t.Helper()

	user := models.User{
		Username: username,
		Password: "unused",
		Email:    username + "@example.com",
		Role:     models.RoleAdmin,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	require.NoError(t, err)
	return token
}

func newAssignment(t *testing.T, db *gorm.DB, code string, dueDate *time.Time, maxScore int) models.Assignment {
	t.Helper()

	course := models.Course{CourseName: "Course " + code, CourseCode: code}
	require.NoError(t, db.Create(&course).Error)

	assignment := models.Assignment{
		CourseID: course.ID,
		Title:    "Assignment " + code,
		DueDate:  dueDate,
		MaxScore: maxScore,
	}
	require.NoError(t, db.Create(&assignment).Error)
	return assignment
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

func TestSubmitOnTimeAndDuplicate(t *testing.T) {
	app, db := setupApp(t)

	due := time.Now().AddDate(0, 0, 7)
	assignment := newAssignment(t, db, "SUB-ONT1", &due, 100)
	student, token := newStudent(t, db, "Mara Ebert", "mara@example.com")

	payload := fiber.Map{
		"assignmentId": assignment.ID,
		"studentId":    student.ID,
		"content":      "my solution",
	}

	resp, body := doJSON(t, app, http.MethodPost, "/submissions/", token, payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var submission models.Submission
	require.NoError(t, json.Unmarshal(body.Data, &submission))
	assert.Equal(t, models.SubmissionSubmitted, submission.Status)
	assert.NotNil(t, submission.SubmittedDate)

	resp, body = doJSON(t, app, http.MethodPost, "/submissions/", token, payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Assignment already submitted!", body.Message)
}

func TestLateSubmission(t *testing.T) {
	app, db := setupApp(t)

	due := time.Now().AddDate(0, 0, -3)
	assignment := newAssignment(t, db, "SUB-LATE1", &due, 100)
	student, token := newStudent(t, db, "Nils Falk", "nils@example.com")

	resp, body := doJSON(t, app, http.MethodPost, "/submissions/", token, fiber.Map{
		"assignmentId": assignment.ID,
		"studentId":    student.ID,
		"content":      "sorry, late",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var submission models.Submission
	require.NoError(t, json.Unmarshal(body.Data, &submission))
	assert.Equal(t, models.SubmissionLate, submission.Status)
}

func TestGradeSubmission(t *testing.T) {
	app, db := setupApp(t)

	assignment := newAssignment(t, db, "SUB-GRD1", nil, 50)
	student, _ := newStudent(t, db, "Olga Senn", "olga@example.com")

	submission := models.Submission{AssignmentID: assignment.ID, StudentID: student.ID, Content: "work"}
	require.NoError(t, db.Create(&submission).Error)

	grader := adminToken(t, db, "sub-grader")
	path := fmt.Sprintf("/submissions/%d/grade", submission.ID)

	// Score above the assignment max is rejected
	resp, _ := doJSON(t, app, http.MethodPut, path, grader, fiber.Map{"score": 60})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPut, path, grader, fiber.Map{"score": 42})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var graded models.Submission
	require.NoError(t, json.Unmarshal(body.Data, &graded))
	assert.Equal(t, models.SubmissionGraded, graded.Status)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 42, *graded.Score)
}

func TestStudentCannotReworkGradedSubmission(t *testing.T) {
	app, db := setupApp(t)

	assignment := newAssignment(t, db, "SUB-RWK1", nil, 100)
	student, token := newStudent(t, db, "Pia Thal", "pia@example.com")

	score := 80
	submission := models.Submission{
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Content:      "v1",
		Score:        &score,
		Status:       models.SubmissionGraded,
	}
	require.NoError(t, db.Create(&submission).Error)

	resp, _ := doJSON(t, app, http.MethodPut, fmt.Sprintf("/submissions/%d", submission.ID), token, fiber.Map{
		"assignmentId": assignment.ID,
		"studentId":    student.ID,
		"content":      "v2",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestStudentCannotSubmitForOthers(t *testing.T) {
	app, db := setupApp(t)

	assignment := newAssignment(t, db, "SUB-OTH1", nil, 100)
	victim, _ := newStudent(t, db, "Rosa Veit", "rosa@example.com")
	_, token := newStudent(t, db, "Sven Dorn", "sven@example.com")

	resp, _ := doJSON(t, app, http.MethodPost, "/submissions/", token, fiber.Map{
		"assignmentId": assignment.ID,
		"studentId":    victim.ID,
		"content":      "impostor",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
