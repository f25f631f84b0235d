package api

import (
	"strings"

	"github.com/arikhalder/medwatch/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

func (handler *Handler) PatientOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	if user.Role != models.RolePatient {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "patients only"})
	}
	return c.Next()
}

func (handler *Handler) DoctorOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	if user.Role != models.RoleDoctor {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "doctors only"})
	}
	return c.Next()
}

// deviceToken pulls the shared device secret out of the Authorization
// header. Both the "Device" and "Bearer" schemes are accepted; anything
// else is treated as missing.
func deviceToken(c *fiber.Ctx) (string, bool) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return "", false
	}
	for _, prefix := range []string{"Device ", "Bearer "} {
		if strings.HasPrefix(header, prefix) {
			token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
			if token == "" {
				return "", false
			}
			return token, true
		}
	}
	return "", false
}
