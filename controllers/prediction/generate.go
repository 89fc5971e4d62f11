package prediction

import (
	"betsim/database"
	"betsim/helpers"
	"betsim/models"
	predictionsvc "betsim/services/prediction"

	"github.com/gofiber/fiber/v2"
)

// Generate creates one fresh recommendation for every upcoming game.
func Generate(c *fiber.Ctx) error {
	var games []models.Game
	if err := database.DB.Where("status = ?", models.GameUpcoming).Find(&games).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_GET_GAMES")
	}

	created := make([]models.Prediction, 0, len(games))
	for i := range games {
		p := predictionsvc.Generate(&games[i])
		if err := database.DB.Create(&p).Error; err != nil {
			return helpers.JSONInternal(c, "FAILED_TO_CREATE_PREDICTION")
		}
		created = append(created, p)
	}

	return helpers.JSONSuccess(c, "Predictions generated", created)
}
