package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursehub/config"
	"coursehub/database"
	authRoutes "coursehub/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (*http.Response, apiResponse) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestRegisterAndLogin(t *testing.T) {
	app := setupApp(t)

	register := fiber.Map{
		"username": "amelia",
		"password": "secret123",
		"email":    "amelia@example.com",
		"fullName": "Amelia Harper",
		"phone":    "555-0101",
	}

	resp, body := doJSON(t, app, http.MethodPost, "/auth/register", register)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, body.Status)

	// Same username again
	register["email"] = "amelia2@example.com"
	resp, _ = doJSON(t, app, http.MethodPost, "/auth/register", register)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"username": "amelia",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var login struct {
		Token    string `json:"token"`
		Username string `json:"username"`
		Role     string `json:"role"`
		FullName string `json:"fullName"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "amelia", login.Username)
	assert.Equal(t, "STUDENT", login.Role)
	assert.Equal(t, "Amelia Harper", login.FullName)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/auth/register", fiber.Map{
		"username": "bruno",
		"password": "secret123",
		"email":    "bruno@example.com",
		"fullName": "Bruno Keller",
	})

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"username": "bruno",
		"password": "wrongpass",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownUser(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"username": "nobody",
		"password": "whatever",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/register", fiber.Map{
		"username": "ab",
		"password": "123",
		"email":    "not-an-email",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
