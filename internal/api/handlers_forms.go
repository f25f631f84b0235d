package api

import (
	"errors"
	"time"

	"github.com/arikhalder/medwatch/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SubmitSymptom is a form-backed mutation: validation failures ride back to
// the dashboard as a flash message, not a JSON error.
func (handler *Handler) SubmitSymptom(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.repositories.Patients.FindByUserID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}

	input := symptomFormInput{}
	if err := c.BodyParser(&input); err != nil {
		return flashAndRedirect(c, FlashPayload{FormError: "invalid input"})
	}

	message, err := handler.symptomService.Submit(&profile, input.SymptomType, input.Severity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSymptomTypeRequired), errors.Is(err, services.ErrInvalidSeverity):
			return flashAndRedirect(c, FlashPayload{FormError: err.Error()})
		default:
			return apiError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return flashAndRedirect(c, FlashPayload{FormSuccess: message})
}

// RecordCycle stores one menstrual cycle from the dashboard form.
func (handler *Handler) RecordCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.repositories.Patients.FindByUserID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}

	input := cycleFormInput{}
	if err := c.BodyParser(&input); err != nil {
		return flashAndRedirect(c, FlashPayload{FormError: "invalid input"})
	}

	cycleInput := services.CycleInput{
		FlowIntensity: input.FlowIntensity,
		PainLevel:     input.PainLevel,
		Notes:         input.Notes,
	}
	if startDate, parseErr := time.Parse("2006-01-02", input.StartDate); parseErr == nil {
		cycleInput.StartDate = startDate
	}
	if endDate, parseErr := time.Parse("2006-01-02", input.EndDate); parseErr == nil {
		cycleInput.EndDate = &endDate
	}

	result, err := handler.cycleService.Record(&profile, cycleInput)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFemalePatientsOnly),
			errors.Is(err, services.ErrInvalidPainLevel),
			errors.Is(err, services.ErrCycleFieldsRequired),
			errors.Is(err, services.ErrInvalidFlow):
			return flashAndRedirect(c, FlashPayload{FormError: err.Error()})
		default:
			return apiError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return flashAndRedirect(c, FlashPayload{FormSuccess: result.Message})
}

// CloseCycle sets the end date on the latest open cycle from the dashboard
// form.
func (handler *Handler) CloseCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := handler.repositories.Patients.FindByUserID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}

	input := cycleCloseFormInput{}
	if err := c.BodyParser(&input); err != nil {
		return flashAndRedirect(c, FlashPayload{FormError: "invalid input"})
	}
	endDate, parseErr := time.Parse("2006-01-02", input.EndDate)
	if parseErr != nil {
		return flashAndRedirect(c, FlashPayload{FormError: "please fill in all required fields"})
	}

	if _, err := handler.cycleService.CloseLatest(&profile, endDate); err != nil {
		switch {
		case errors.Is(err, services.ErrFemalePatientsOnly),
			errors.Is(err, services.ErrNoOpenCycle),
			errors.Is(err, services.ErrEndBeforeStart):
			return flashAndRedirect(c, FlashPayload{FormError: err.Error()})
		default:
			return apiError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return flashAndRedirect(c, FlashPayload{FormSuccess: "Cycle end date recorded."})
}
