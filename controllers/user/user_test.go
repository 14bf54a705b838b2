package userController_test

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
	userRoutes "coursehub/routers/userRoutes"

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
	userRoutes.SetupUserRoutes(app)
	return app, db
}

func newUser(t *testing.T, db *gorm.DB, username, role string) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Password: "unused",
		Email:    username + "@example.com",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	require.NoError(t, err)
	return token
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

// The whole last-admin scenario runs in one test so the admin count is fully
// under its control.
func TestLastAdminProtection(t *testing.T) {
	app, db := setupApp(t)

	admin := newUser(t, db, "root-admin", models.RoleAdmin)
	token := tokenFor(t, admin)

	// Sole admin cannot be demoted
	resp, body := doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/users/%d/role", admin.ID), token, fiber.Map{"role": models.RoleStudent})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Cannot change the role of the last admin!", body.Message)

	// Sole admin cannot be deleted
	resp, body = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/users/%d", admin.ID), token, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Cannot delete the last admin!", body.Message)

	// With a second admin present both operations go through
	second := newUser(t, db, "backup-admin", models.RoleAdmin)

	resp, _ = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/users/%d", second.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Back to one admin, protection applies again
	resp, _ = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/users/%d/role", admin.ID), token, fiber.Map{"role": models.RoleInstructor})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestUpdateRoleValidation(t *testing.T) {
	app, db := setupApp(t)

	admin := newUser(t, db, "role-admin", models.RoleAdmin)
	target := newUser(t, db, "role-target", models.RoleStudent)
	token := tokenFor(t, admin)

	resp, _ := doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/users/%d/role", target.ID), token, fiber.Map{"role": "SUPERHERO"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/users/%d/role", target.ID), token, fiber.Map{"role": models.RoleInstructor})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.User
	require.NoError(t, json.Unmarshal(body.Data, &updated))
	assert.Equal(t, models.RoleInstructor, updated.Role)
}

func TestUserRoutesAdminOnly(t *testing.T) {
	app, db := setupApp(t)

	student := newUser(t, db, "plain-student", models.RoleStudent)
	token := tokenFor(t, student)

	resp, _ := doJSON(t, app, http.MethodGet, "/users/", token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
