package api

import (
	"strconv"

	"github.com/arikhalder/medwatch/internal/db"
	"github.com/arikhalder/medwatch/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	symptomListCap = 20
	cycleListCap   = 10
)

// ListMeasurements returns the newest readings for the caller's profile. A
// doctor reads an assigned patient's history by passing patient_id (the
// patient's user id); an unassigned patient resolves to a plain not-found.
func (handler *Handler) ListMeasurements(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var profile models.PatientProfile
	var err error
	if user.Role == models.RoleDoctor {
		patientUserID, parseErr := strconv.ParseUint(c.Query("patient_id"), 10, 64)
		if parseErr != nil || patientUserID == 0 {
			return apiError(c, fiber.StatusBadRequest, "patient_id required")
		}
		profile, err = handler.repositories.Patients.FindByUserIDForDoctor(uint(patientUserID), user.ID)
		if err != nil {
			return apiError(c, fiber.StatusNotFound, "not found")
		}
	} else {
		profile, err = handler.repositories.Patients.FindByUserID(user.ID)
		if err != nil {
			return apiError(c, fiber.StatusNotFound, "profile not found")
		}
	}

	measurements, err := handler.repositories.Measurements.ListByPatient(profile.ID, db.MeasurementListCap)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	total, err := handler.repositories.Measurements.CountByPatient(profile.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"measurements": measurementViews(measurements),
		"total":        total,
	})
}

// ListSymptoms returns recent symptom reports. Doctors read an assigned
// patient's reports by passing patient_id, same as measurements.
func (handler *Handler) ListSymptoms(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var profile models.PatientProfile
	var err error
	if user.Role == models.RoleDoctor {
		patientUserID, parseErr := strconv.ParseUint(c.Query("patient_id"), 10, 64)
		if parseErr != nil || patientUserID == 0 {
			return apiError(c, fiber.StatusBadRequest, "patient_id required")
		}
		profile, err = handler.repositories.Patients.FindByUserIDForDoctor(uint(patientUserID), user.ID)
		if err != nil {
			return apiError(c, fiber.StatusNotFound, "not found")
		}
	} else {
		profile, err = handler.repositories.Patients.FindByUserID(user.ID)
		if err != nil {
			return apiError(c, fiber.StatusNotFound, "profile not found")
		}
	}

	symptoms, err := handler.repositories.Symptoms.RecentByPatient(profile.ID, symptomListCap)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"symptoms": symptomViews(symptoms)})
}

// ListCycles returns recent cycles. Doctors read an assigned patient's
// cycles by passing patient_id with the measurements semantics; a patient
// without a profile deliberately gets an empty list, not an error.
func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var profile models.PatientProfile
	var err error
	if user.Role == models.RoleDoctor {
		patientUserID, parseErr := strconv.ParseUint(c.Query("patient_id"), 10, 64)
		if parseErr != nil || patientUserID == 0 {
			return apiError(c, fiber.StatusBadRequest, "patient_id required")
		}
		profile, err = handler.repositories.Patients.FindByUserIDForDoctor(uint(patientUserID), user.ID)
		if err != nil {
			return apiError(c, fiber.StatusNotFound, "not found")
		}
	} else {
		profile, err = handler.repositories.Patients.FindByUserID(user.ID)
		if err != nil {
			return c.JSON(fiber.Map{"cycles": []fiber.Map{}})
		}
	}

	cycles, err := handler.repositories.Cycles.RecentByPatient(profile.ID, cycleListCap)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"cycles": cycleViews(cycles)})
}
