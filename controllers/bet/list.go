package bet

import (
	"betsim/database"
	"betsim/helpers"
	"betsim/models"

	"github.com/gofiber/fiber/v2"
)

// List returns the user's full wager history, newest first, joined with game
// data.
func List(c *fiber.Ctx) error {
	u, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var bets []models.Bet
	if err := database.DB.Preload("Game").
		Where("user_id = ?", u.ID).
		Order("created_at DESC").
		Find(&bets).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_GET_BETS")
	}
	return helpers.JSONSuccess(c, "OK", bets)
}

// Recent returns the latest N wagers (default 5).
func Recent(c *fiber.Ctx) error {
	u, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	limit := c.QueryInt("limit", 5)
	if limit <= 0 || limit > 100 {
		limit = 5
	}

	var bets []models.Bet
	if err := database.DB.Preload("Game").
		Where("user_id = ?", u.ID).
		Order("created_at DESC").
		Limit(limit).
		Find(&bets).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_GET_BETS")
	}
	return helpers.JSONSuccess(c, "OK", bets)
}
