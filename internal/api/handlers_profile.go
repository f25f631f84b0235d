package api

import (
	"time"

	"github.com/arikhalder/medwatch/internal/models"
	"github.com/gofiber/fiber/v2"
)

// UpdateProfile edits the caller's contact details. Patients may additionally
// update the date of birth and fibroid history on their profile; only fields
// present in the payload change.
func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid field values")
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if err := handler.repositories.Users.Save(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	if user.Role == models.RolePatient && (input.DateOfBirth != nil || input.HasFibroidHistory != nil) {
		profile, err := handler.repositories.Patients.FindByUserID(user.ID)
		if err != nil {
			return apiError(c, fiber.StatusNotFound, "profile not found")
		}
		if input.DateOfBirth != nil {
			dateOfBirth, parseErr := time.Parse("2006-01-02", *input.DateOfBirth)
			if parseErr != nil {
				return apiError(c, fiber.StatusBadRequest, "invalid date_of_birth")
			}
			profile.DOB = &dateOfBirth
		}
		if input.HasFibroidHistory != nil {
			profile.HasFibroidHistory = *input.HasFibroidHistory
		}
		if err := handler.repositories.Patients.Save(&profile); err != nil {
			return apiError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(fiber.Map{
		"user_id":   user.ID,
		"full_name": user.FullName(),
		"email":     user.Email,
		"phone":     user.Phone,
	})
}
