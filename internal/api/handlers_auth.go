package api

import (
	"errors"

	"github.com/arikhalder/medwatch/internal/models"
	"github.com/arikhalder/medwatch/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) RegisterPatient(c *fiber.Ctx) error {
	return handler.register(c, models.RolePatient)
}

func (handler *Handler) RegisterDoctor(c *fiber.Ctx) error {
	return handler.register(c, models.RoleDoctor)
}

func (handler *Handler) register(c *fiber.Ctx, role string) error {
	input := registrationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid field values")
	}

	registration := services.Registration{
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Gender:    input.Gender,
	}

	var user models.User
	var err error
	if role == models.RoleDoctor {
		user, err = handler.authService.RegisterDoctor(registration)
	} else {
		user, err = handler.authService.RegisterPatient(registration)
	}
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return apiError(c, fiber.StatusConflict, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(input.Username, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	redirect := "/dashboard"
	if user.Role == models.RoleDoctor {
		redirect = "/doctor/dashboard"
	}
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{
			"user_id":  user.ID,
			"role":     user.Role,
			"redirect": redirect,
		})
	}
	return c.Redirect(redirect, fiber.StatusSeeOther)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// DeleteAccount removes the caller's account. For patients the profile and
// everything hanging off it goes with the user row.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.repositories.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
