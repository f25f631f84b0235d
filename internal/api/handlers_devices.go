package api

import (
	"github.com/arikhalder/medwatch/internal/models"
	"github.com/arikhalder/medwatch/internal/security"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RegisterDevice issues a new wearable identity for the logged-in patient.
// The shared token is returned exactly once; only its presence in the
// Authorization header authenticates future pushes.
func (handler *Handler) RegisterDevice(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := deviceInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "device name required")
	}

	token, err := security.GenerateDeviceToken()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate device token")
	}

	ownerID := user.ID
	device := models.Device{
		ID:      uuid.NewString(),
		Name:    input.Name,
		OwnerID: &ownerID,
		Token:   token,
	}
	if err := handler.repositories.Devices.Create(&device); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"device_id": device.ID,
		"name":      device.Name,
		"token":     device.Token,
	})
}
