package game

import (
	"betsim/database"
	"betsim/helpers"
	"betsim/models"

	"github.com/gofiber/fiber/v2"
)

// List returns the full slate ordered by start time, each game carrying its
// predictions.
func List(c *fiber.Ctx) error {
	var games []models.Game
	if err := database.DB.Preload("Predictions").Order("game_time ASC").Find(&games).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_GET_GAMES")
	}
	return helpers.JSONSuccess(c, "OK", games)
}
