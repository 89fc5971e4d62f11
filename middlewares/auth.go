package middlewares

import (
	"betsim/database"
	"betsim/helpers"
	"betsim/models"

	"github.com/gofiber/fiber/v2"
)

// SessionAuth resolves the X-Session-Token header to a user and stores it in
// the request locals. Every downstream handler works from that explicit
// user; there is no ambient current-user fallback.
func SessionAuth(c *fiber.Ctx) error {
	token := c.Get("X-Session-Token")
	if token == "" {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_TOKEN_REQUIRED")
	}

	var session models.Session
	if err := database.DB.Preload("User").Where("sid = ?", token).First(&session).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}
	if session.Expired() {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_EXPIRED")
	}

	c.Locals("user", session.User)
	return c.Next()
}
