package prediction

import (
	"betsim/database"
	"betsim/helpers"
	"betsim/models"

	"github.com/gofiber/fiber/v2"
)

func List(c *fiber.Ctx) error {
	var predictions []models.Prediction
	if err := database.DB.Order("created_at DESC").Find(&predictions).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_GET_PREDICTIONS")
	}
	return helpers.JSONSuccess(c, "OK", predictions)
}
