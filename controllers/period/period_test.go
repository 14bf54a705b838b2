package periodController_test

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
	periodRoutes "coursehub/routers/periodRoutes"

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

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	config.LoadConfig()
	db := database.ConnectTestDb()

	var admin models.User
	if err := db.Where("username = ?", "period-admin").First(&admin).Error; err != nil {
		admin = models.User{
			Username: "period-admin",
			Password: "unused",
			Email:    "period-admin@example.com",
			Role:     models.RoleAdmin,
		}
		require.NoError(t, db.Create(&admin).Error)
	}

	token, err := middleware.GenerateJWT(admin.ID, admin.Username, admin.Role)
	require.NoError(t, err)

	app := fiber.New()
	periodRoutes.SetupPeriodRoutes(app)
	return app, db, token
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

func TestCreatePeriodDerivesStatus(t *testing.T) {
	app, _, token := setupApp(t)

	today := time.Now()
	start := today.AddDate(0, 0, -1).Format("2006-01-02")
	end := today.AddDate(0, 0, 7).Format("2006-01-02")

	resp, body := doJSON(t, app, http.MethodPost, "/registration-periods/", token, fiber.Map{
		"periodName": "Fall Registration",
		"startDate":  start,
		"endDate":    end,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var period models.RegistrationPeriod
	require.NoError(t, json.Unmarshal(body.Data, &period))
	assert.Equal(t, models.PeriodActive, period.Status)

	// A future period comes back upcoming
	resp, body = doJSON(t, app, http.MethodPost, "/registration-periods/", token, fiber.Map{
		"periodName": "Winter Registration",
		"startDate":  today.AddDate(0, 1, 0).Format("2006-01-02"),
		"endDate":    today.AddDate(0, 2, 0).Format("2006-01-02"),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body.Data, &period))
	assert.Equal(t, models.PeriodUpcoming, period.Status)
}

func TestCreatePeriodRejectsInvertedRange(t *testing.T) {
	app, _, token := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/registration-periods/", token, fiber.Map{
		"periodName": "Backwards",
		"startDate":  "2026-10-01",
		"endDate":    "2026-09-01",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestReplacePeriodCourses(t *testing.T) {
	app, db, token := setupApp(t)

	period := models.RegistrationPeriod{
		PeriodName: "Spring Registration",
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(0, 0, 14),
	}
	require.NoError(t, db.Create(&period).Error)

	courses := make([]models.Course, 3)
	for i := range courses {
		courses[i] = models.Course{
			CourseName: fmt.Sprintf("Course %d", i+1),
			CourseCode: fmt.Sprintf("PRD-%d", i+1),
		}
		require.NoError(t, db.Create(&courses[i]).Error)
	}

	path := fmt.Sprintf("/registration-periods/%d/courses", period.ID)

	resp, _ := doJSON(t, app, http.MethodPut, path, token, []uint{courses[0].ID, courses[1].ID})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.ElementsMatch(t, []uint{courses[0].ID, courses[1].ID}, linkedCourseIDs(t, db, period.ID))

	// Replacement swaps the whole set
	resp, _ = doJSON(t, app, http.MethodPut, path, token, []uint{courses[1].ID, courses[2].ID})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.ElementsMatch(t, []uint{courses[1].ID, courses[2].ID}, linkedCourseIDs(t, db, period.ID))

	// Same set again is idempotent
	resp, _ = doJSON(t, app, http.MethodPut, path, token, []uint{courses[1].ID, courses[2].ID})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.ElementsMatch(t, []uint{courses[1].ID, courses[2].ID}, linkedCourseIDs(t, db, period.ID))

	// Empty set clears all links
	resp, _ = doJSON(t, app, http.MethodPut, path, token, []uint{})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, linkedCourseIDs(t, db, period.ID))
}

func TestReplacePeriodCoursesUnknownCourse(t *testing.T) {
	app, db, token := setupApp(t)

	period := models.RegistrationPeriod{
		PeriodName: "Summer Registration",
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(0, 0, 30),
	}
	require.NoError(t, db.Create(&period).Error)

	resp, _ := doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/registration-periods/%d/courses", period.ID), token, []uint{99999})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Empty(t, linkedCourseIDs(t, db, period.ID))
}

func TestGetPeriodDetails(t *testing.T) {
	app, db, token := setupApp(t)

	period := models.RegistrationPeriod{
		PeriodName: "Detail Period",
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(0, 0, 10),
	}
	require.NoError(t, db.Create(&period).Error)

	course := models.Course{CourseName: "Detail Course", CourseCode: "PRD-DET1"}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&models.PeriodCourse{PeriodID: period.ID, CourseID: course.ID}).Error)

	resp, body := doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/registration-periods/%d/details", period.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var details struct {
		Period    models.RegistrationPeriod `json:"period"`
		Courses   []models.Course           `json:"courses"`
		CourseIDs []uint                    `json:"courseIds"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &details))
	assert.Equal(t, period.ID, details.Period.ID)
	require.Len(t, details.Courses, 1)
	assert.Equal(t, course.ID, details.Courses[0].ID)
	assert.Equal(t, []uint{course.ID}, details.CourseIDs)
}

func TestListRefreshesStaleStatus(t *testing.T) {
	app, db, token := setupApp(t)

	// Stored as active but the window is already over
	stale := models.RegistrationPeriod{
		PeriodName: "Stale Period",
		StartDate:  time.Now().AddDate(0, 0, -20),
		EndDate:    time.Now().AddDate(0, 0, -10),
		Status:     models.PeriodActive,
	}
	require.NoError(t, db.Create(&stale).Error)

	resp, _ := doJSON(t, app, http.MethodGet, "/registration-periods/", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reloaded models.RegistrationPeriod
	require.NoError(t, db.First(&reloaded, stale.ID).Error)
	assert.Equal(t, models.PeriodClosed, reloaded.Status)
}

func linkedCourseIDs(t *testing.T, db *gorm.DB, periodID uint) []uint {
	t.Helper()

	var ids []uint
	require.NoError(t, db.Model(&models.PeriodCourse{}).
		Where("period_id = ?", periodID).Pluck("course_id", &ids).Error)
	return ids
}
