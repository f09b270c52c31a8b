package route

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lecats_backend/internals/configs"
	authModel "lecats_backend/internals/features/users/auth/model"
	userModel "lecats_backend/internals/features/users/user/model"
)

func newAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	configs.JWTSecret = "test-secret"
	configs.SeedAdminEmail = "admin@example.com"
	configs.SeedAdminPassword = "admin123"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
	))

	app := fiber.New()
	AuthRoutes(app, db)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRegisterThenLogin(t *testing.T) {
	app, _ := newAuthApp(t)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"full_name": "Citra Dewi",
		"email":     "citra@example.com",
		"password":  "rahasia1",
		"role":      "CR",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "citra@example.com",
		"password": "rahasia1",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _ := newAuthApp(t)

	payload := fiber.Map{
		"full_name": "Citra Dewi",
		"email":     "citra@example.com",
		"password":  "rahasia1",
		"role":      "CR",
	}
	resp := postJSON(t, app, "/auth/register", payload)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/register", payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginBadCredentials(t *testing.T) {
	app, _ := newAuthApp(t)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"full_name": "Citra Dewi",
		"email":     "citra@example.com",
		"password":  "rahasia1",
		"role":      "CR",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// password salah
	resp = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "citra@example.com",
		"password": "salah123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// email tidak terdaftar
	resp = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "ghost@example.com",
		"password": "rahasia1",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSeedAdminLoginWithoutUserRow(t *testing.T) {
	app, db := newAuthApp(t)

	resp := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "admin@example.com",
		"password": "admin123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Token)

	// tidak ada baris user yang ikut terbuat
	var count int64
	db.Model(&userModel.UserModel{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRegisterInvalidRole(t *testing.T) {
	app, _ := newAuthApp(t)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"full_name": "Citra Dewi",
		"email":     "citra@example.com",
		"password":  "rahasia1",
		"role":      "Student",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
