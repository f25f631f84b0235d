package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// PatientDashboard returns the aggregated patient view: the latest reading,
// re-evaluated recommendations, recent history, and any pending form flash.
func (handler *Handler) PatientDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.repositories.Patients.FindByUserID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}

	dashboard, err := handler.dashboardService.BuildPatientDashboard(profile)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	flash := popFlashCookie(c)

	profileView := fiber.Map{
		"user_id":             profile.UserID,
		"username":            user.Username,
		"full_name":           user.FullName(),
		"gender":              profile.Gender,
		"age":                 nil,
		"has_fibroid_history": profile.HasFibroidHistory,
	}
	if age, known := profile.AgeAt(time.Now().In(handler.location)); known {
		profileView["age"] = age
	}

	response := fiber.Map{
		"profile":            profileView,
		"latest_measurement": nil,
		"recommendations":    dashboard.Recommendations,
		"recent_symptoms":    symptomViews(dashboard.RecentSymptoms),
		"latest_tooltip":     nil,
		"show_menstrual":     dashboard.ShowMenstrual,
	}
	if dashboard.Latest != nil {
		response["latest_measurement"] = measurementView(*dashboard.Latest)
	}
	if dashboard.LatestToolTip != nil {
		response["latest_tooltip"] = tooltipView(*dashboard.LatestToolTip)
	}
	if dashboard.ShowMenstrual {
		response["recent_cycles"] = cycleViews(dashboard.RecentCycles)
	}
	if flash.FormError != "" || flash.FormSuccess != "" {
		response["flash"] = flash
	}

	return c.JSON(response)
}

// DoctorDashboard returns the roster summary for the logged-in doctor.
func (handler *Handler) DoctorDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	roster, err := handler.dashboardService.DoctorRoster(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"doctor": fiber.Map{
			"user_id":   user.ID,
			"full_name": user.FullName(),
		},
		"patients": roster,
	})
}

func (handler *Handler) DoctorPatients(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	roster, err := handler.dashboardService.DoctorRoster(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"patients": roster})
}

// AssignPatient puts a patient under the calling doctor's care. Assignment
// may be changed later; the roster reflects the current assignment only.
func (handler *Handler) AssignPatient(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := assignPatientInput{}
	if err := c.BodyParser(&input); err != nil || input.PatientUserID == 0 {
		return apiError(c, fiber.StatusBadRequest, "patient_user_id required")
	}

	profile, err := handler.repositories.Patients.FindByUserID(input.PatientUserID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	doctorID := user.ID
	if err := handler.repositories.Patients.AssignDoctor(profile.ID, &doctorID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"ok": true, "patient_user_id": input.PatientUserID})
}
