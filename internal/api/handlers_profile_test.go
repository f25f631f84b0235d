package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arikhalder/medwatch/internal/models"
)

func TestUpdateProfile_PatientUpdatesUserAndProfileFields(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user, profile := createTestPatient(t, database, "ada", models.GenderFemale, nil)

	payload := map[string]any{
		"first_name":          "Ada",
		"last_name":           "Obi",
		"phone":               "+2348000000000",
		"date_of_birth":       "1990-04-12",
		"has_fibroid_history": true,
	}
	request := httptest.NewRequest(http.MethodPut, "/api/profile", jsonBody(t, payload))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Cookie", loginAndExtractAuthCookie(t, app, "ada", "patient-pass"))

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("update request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	var updatedUser models.User
	if err := database.First(&updatedUser, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if updatedUser.FirstName != "Ada" || updatedUser.LastName != "Obi" {
		t.Fatalf("expected updated name, got %q %q", updatedUser.FirstName, updatedUser.LastName)
	}
	if updatedUser.Phone != "+2348000000000" {
		t.Fatalf("expected updated phone, got %q", updatedUser.Phone)
	}

	var updatedProfile models.PatientProfile
	if err := database.First(&updatedProfile, profile.ID).Error; err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if updatedProfile.DOB == nil || updatedProfile.DOB.Format("2006-01-02") != "1990-04-12" {
		t.Fatalf("expected updated date of birth, got %v", updatedProfile.DOB)
	}
	if !updatedProfile.HasFibroidHistory {
		t.Fatal("expected fibroid history flag to be set")
	}
}

func TestUpdateProfile_OmittedFieldsStayUntouched(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user, _ := createTestPatient(t, database, "ada", models.GenderFemale, nil)
	if err := database.Model(&models.User{}).Where("id = ?", user.ID).
		Update("first_name", "Adaeze").Error; err != nil {
		t.Fatalf("seed first name: %v", err)
	}

	payload := map[string]any{"phone": "+2348000000001"}
	request := httptest.NewRequest(http.MethodPut, "/api/profile", jsonBody(t, payload))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Cookie", loginAndExtractAuthCookie(t, app, "ada", "patient-pass"))

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("update request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	var updatedUser models.User
	if err := database.First(&updatedUser, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if updatedUser.FirstName != "Adaeze" {
		t.Fatalf("expected first name untouched, got %q", updatedUser.FirstName)
	}
	if updatedUser.Phone != "+2348000000001" {
		t.Fatalf("expected updated phone, got %q", updatedUser.Phone)
	}
}

func TestUpdateProfile_BadDateOfBirth(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	_, _ = createTestPatient(t, database, "ada", models.GenderFemale, nil)

	payload := map[string]any{"date_of_birth": "12/04/1990"}
	request := httptest.NewRequest(http.MethodPut, "/api/profile", jsonBody(t, payload))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Cookie", loginAndExtractAuthCookie(t, app, "ada", "patient-pass"))

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("update request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}
