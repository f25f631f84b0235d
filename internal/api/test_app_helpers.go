package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arikhalder/medwatch/internal/db"
	"github.com/arikhalder/medwatch/internal/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "medwatch-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.UTC, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func createTestUser(t *testing.T, database *gorm.DB, username string, password string, role string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Username:     strings.ToLower(strings.TrimSpace(username)),
		PasswordHash: string(passwordHash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestPatient(t *testing.T, database *gorm.DB, username string, gender string, doctorID *uint) (models.User, models.PatientProfile) {
	t.Helper()

	user := createTestUser(t, database, username, "patient-pass", models.RolePatient)
	profile := models.PatientProfile{
		UserID:           user.ID,
		Gender:           gender,
		AssignedDoctorID: doctorID,
	}
	if err := database.Create(&profile).Error; err != nil {
		t.Fatalf("create patient profile: %v", err)
	}
	return user, profile
}

func createTestDevice(t *testing.T, database *gorm.DB, token string) models.Device {
	t.Helper()

	device := models.Device{
		ID:    "11111111-2222-3333-4444-555555555555",
		Name:  "test wristband",
		Token: token,
	}
	if err := database.Create(&device).Error; err != nil {
		t.Fatalf("create device: %v", err)
	}
	return device
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, username string, password string) string {
	t.Helper()

	body := jsonBody(t, map[string]string{"username": username, "password": password})
	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func jsonBody(t *testing.T, payload any) *bytes.Reader {
	t.Helper()

	serialized, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return bytes.NewReader(serialized)
}

func decodeJSONBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	decoded := map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode body %q: %v", string(raw), err)
	}
	return decoded
}
