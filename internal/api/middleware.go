package api

import (
	"github.com/arikhalder/medwatch/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName  = "medwatch_auth"
	flashCookieName = "medwatch_flash"
	contextUserKey  = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
