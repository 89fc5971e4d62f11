package user

import (
	"betsim/helpers"
	"betsim/models"

	"github.com/gofiber/fiber/v2"
)

func Profile(c *fiber.Ctx) error {
	u, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}
	return helpers.JSONSuccess(c, "OK", u)
}
