package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arikhalder/medwatch/internal/models"
)

func TestRegisterPatient_CreatesProfileAndSession(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)

	payload := map[string]any{
		"username":   "Ada",
		"password":   "secret-pass",
		"first_name": "Ada",
		"last_name":  "Obi",
		"gender":     "F",
	}
	request := httptest.NewRequest(http.MethodPost, "/api/auth/register/patient", jsonBody(t, payload))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", response.StatusCode)
	}

	var user models.User
	if err := database.Where("username = ?", "ada").First(&user).Error; err != nil {
		t.Fatalf("load registered user: %v", err)
	}
	if user.Role != models.RolePatient {
		t.Fatalf("expected patient role, got %q", user.Role)
	}

	var profile models.PatientProfile
	if err := database.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("expected patient profile to exist: %v", err)
	}
	if profile.Gender != models.GenderFemale {
		t.Fatalf("expected gender F on profile, got %q", profile.Gender)
	}

	hasAuthCookie := false
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			hasAuthCookie = true
		}
	}
	if !hasAuthCookie {
		t.Fatal("expected auth cookie on registration response")
	}
}

func TestRegisterDoctor_HasNoPatientProfile(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)

	payload := map[string]any{"username": "drsen", "password": "secret-pass"}
	request := httptest.NewRequest(http.MethodPost, "/api/auth/register/doctor", jsonBody(t, payload))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Model(&models.PatientProfile{}).Count(&count).Error; err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no patient profile for doctor, got %d", count)
	}
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "ada", "other-pass", models.RolePatient)

	payload := map[string]any{"username": "  ADA  ", "password": "secret-pass"}
	request := httptest.NewRequest(http.MethodPost, "/api/auth/register/patient", jsonBody(t, payload))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", response.StatusCode)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "ada", "correct-pass", models.RolePatient)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		jsonBody(t, map[string]string{"username": "ada", "password": "wrong-pass"}))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", response.StatusCode)
	}
}

func TestDeleteAccount_RemovesPatientAndRelatedRows(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user, profile := createTestPatient(t, database, "ada", models.GenderFemale, nil)

	heartRate := 72.0
	measurement := models.Measurement{PatientID: profile.ID, Timestamp: time.Now().UTC(), HeartRate: &heartRate}
	if err := database.Create(&measurement).Error; err != nil {
		t.Fatalf("seed measurement: %v", err)
	}
	symptom := models.Symptom{PatientID: profile.ID, SymptomType: models.SymptomHeadache, Severity: 4, CreatedAt: time.Now().UTC()}
	if err := database.Create(&symptom).Error; err != nil {
		t.Fatalf("seed symptom: %v", err)
	}

	request := httptest.NewRequest(http.MethodDelete, "/api/auth/account", nil)
	request.Header.Set("Cookie", loginAndExtractAuthCookie(t, app, "ada", "patient-pass"))

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	counts := map[string]int64{}
	for table, model := range map[string]any{
		"users":        &models.User{},
		"profiles":     &models.PatientProfile{},
		"measurements": &models.Measurement{},
		"symptoms":     &models.Symptom{},
	} {
		var count int64
		if err := database.Model(model).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		counts[table] = count
	}
	for table, count := range counts {
		if count != 0 {
			t.Fatalf("expected %s to be empty after account deletion, got %d rows", table, count)
		}
	}

	var deleted models.User
	if err := database.First(&deleted, user.ID).Error; err == nil {
		t.Fatal("expected user row to be gone")
	}
}

func TestRoleGates(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	_, _ = createTestPatient(t, database, "ada", models.GenderFemale, nil)
	createTestUser(t, database, "drsen", "doctor-pass", models.RoleDoctor)

	patientCookie := loginAndExtractAuthCookie(t, app, "ada", "patient-pass")
	doctorCookie := loginAndExtractAuthCookie(t, app, "drsen", "doctor-pass")

	cases := []struct {
		name       string
		path       string
		cookie     string
		wantStatus int
	}{
		{name: "patient denied doctor roster", path: "/api/doctor/patients", cookie: patientCookie, wantStatus: http.StatusForbidden},
		{name: "patient denied doctor dashboard", path: "/api/doctor/dashboard", cookie: patientCookie, wantStatus: http.StatusForbidden},
		{name: "doctor denied patient dashboard", path: "/api/patient/dashboard", cookie: doctorCookie, wantStatus: http.StatusForbidden},
		{name: "anonymous denied", path: "/api/patient/dashboard", cookie: "", wantStatus: http.StatusUnauthorized},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, testCase.path, nil)
			if testCase.cookie != "" {
				request.Header.Set("Cookie", testCase.cookie)
			}

			response, err := app.Test(request, -1)
			if err != nil {
				t.Fatalf("GET %s failed: %v", testCase.path, err)
			}
			defer response.Body.Close()

			if response.StatusCode != testCase.wantStatus {
				t.Fatalf("GET %s expected %d, got %d", testCase.path, testCase.wantStatus, response.StatusCode)
			}
		})
	}
}
