package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"trainhub/config"
	"trainhub/database"
	authRoutes "trainhub/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func registerPayload(role string) map[string]interface{} {
	suffix := uuid.NewString()[:8]
	return map[string]interface{}{
		"username": "user_" + suffix,
		"email":    "user_" + suffix + "@example.com",
		"password": "secret123",
		"name":     "Test User " + suffix,
		"role":     role,
	}
}

func TestRegisterThenLogin(t *testing.T) {
	app := setup(t)

	payload := registerPayload("student")
	status, body := doJSON(t, app, http.MethodPost, "/api/register", payload)
	require.Equal(t, http.StatusCreated, status, "register failed: %v", body)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, payload["username"], data["username"])
	assert.Equal(t, "student", data["role"])
	_, hasPassword := data["password"]
	assert.False(t, hasPassword, "password must never be returned")

	status, body = doJSON(t, app, http.MethodPost, "/api/login", map[string]interface{}{
		"username": payload["username"],
		"password": payload["password"],
	})
	require.Equal(t, http.StatusOK, status)
	loginData := body["data"].(map[string]interface{})
	assert.NotEmpty(t, loginData["token"])
}

func TestLoginFailuresAreUniform(t *testing.T) {
	app := setup(t)

	payload := registerPayload("student")
	status, _ := doJSON(t, app, http.MethodPost, "/api/register", payload)
	require.Equal(t, http.StatusCreated, status)

	// Wrong password
	status, body := doJSON(t, app, http.MethodPost, "/api/login", map[string]interface{}{
		"username": payload["username"],
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["error"])

	// Unknown username gets the same message
	status, body = doJSON(t, app, http.MethodPost, "/api/login", map[string]interface{}{
		"username": "no-such-user",
		"password": "whatever123",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := setup(t)

	payload := registerPayload("student")
	status, _ := doJSON(t, app, http.MethodPost, "/api/register", payload)
	require.Equal(t, http.StatusCreated, status)

	dup := registerPayload("student")
	dup["username"] = payload["username"]
	status, body := doJSON(t, app, http.MethodPost, "/api/register", dup)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "already registered")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setup(t)

	payload := registerPayload("teacher")
	status, _ := doJSON(t, app, http.MethodPost, "/api/register", payload)
	require.Equal(t, http.StatusCreated, status)

	dup := registerPayload("teacher")
	dup["email"] = payload["email"]
	status, _ = doJSON(t, app, http.MethodPost, "/api/register", dup)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	app := setup(t)

	payload := registerPayload("admin")
	status, _ := doJSON(t, app, http.MethodPost, "/api/register", payload)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRegisterValidation(t *testing.T) {
	app := setup(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/register", map[string]interface{}{
		"username": "ab",
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}
