package api

import (
	"errors"

	"github.com/arikhalder/medwatch/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// DeviceIngest accepts one measurement pushed by a wearable. Authentication
// is the shared device token, not a user session.
func (handler *Handler) DeviceIngest(c *fiber.Ctx) error {
	token, ok := deviceToken(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "missing or invalid device token")
	}

	input := ingestInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid field values")
	}

	result, err := handler.ingestService.Ingest(token, services.IngestRequest{
		PatientUserID:     input.PatientUserID,
		Timestamp:         input.Timestamp,
		HeartRate:         input.HeartRate,
		SpO2:              input.SpO2,
		Temperature:       input.Temperature,
		SystolicBP:        input.SystolicBP,
		DiastolicBP:       input.DiastolicBP,
		MenstrualPain:     input.MenstrualPain,
		BleedingIntensity: input.Bleeding,
		RawPPG:            input.RawPPG,
		Note:              input.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownDevice):
			return apiError(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, services.ErrPatientRequired),
			errors.Is(err, services.ErrPatientNotFound),
			errors.Is(err, services.ErrInvalidBleeding):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			logrus.WithError(err).Error("device ingestion failed")
			return apiError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":          "ok",
		"measurement_id":  result.MeasurementID,
		"recommendations": result.Recommendations,
	})
}
