package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get("Accept")), "application/json")
}

// flashAndRedirect is the form-backed mutation response: the outcome rides
// back to the dashboard in a short-lived cookie instead of a JSON body.
func flashAndRedirect(c *fiber.Ctx, payload FlashPayload) error {
	setFlashCookie(c, payload)
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}
