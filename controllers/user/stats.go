package user

import (
	"betsim/database"
	"betsim/helpers"
	"betsim/models"
	"betsim/services/stats"

	"github.com/gofiber/fiber/v2"
)

func Stats(c *fiber.Ctx) error {
	u, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	result, err := stats.Compute(database.DB, u.ID)
	if err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_COMPUTE_STATS")
	}
	return helpers.JSONSuccess(c, "OK", result)
}
