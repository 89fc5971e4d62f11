package game

import (
	"time"

	"betsim/database"
	"betsim/helpers"
	"betsim/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

type CreateGameRequest struct {
	HomeTeam      string           `json:"home_team" validate:"required"`
	AwayTeam      string           `json:"away_team" validate:"required"`
	Sport         string           `json:"sport" validate:"required,oneof=NBA NFL MLB NHL"`
	GameTime      time.Time        `json:"game_time" validate:"required"`
	HomeSpread    *decimal.Decimal `json:"home_spread"`
	TotalPoints   *decimal.Decimal `json:"total_points"`
	HomeMoneyline int              `json:"home_moneyline"`
	AwayMoneyline int              `json:"away_moneyline"`
}

// Create ingests a game with its market lines. Games always start upcoming;
// settlement is the only path that moves them to finished.
func Create(c *fiber.Ctx) error {
	var req CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "INVALID_GAME_DATA")
	}

	g := models.Game{
		HomeTeam:      req.HomeTeam,
		AwayTeam:      req.AwayTeam,
		Sport:         req.Sport,
		GameTime:      req.GameTime,
		Status:        models.GameUpcoming,
		HomeSpread:    req.HomeSpread,
		TotalPoints:   req.TotalPoints,
		HomeMoneyline: req.HomeMoneyline,
		AwayMoneyline: req.AwayMoneyline,
	}
	if err := database.DB.Create(&g).Error; err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_CREATE_GAME")
	}
	return helpers.JSONSuccess(c, "Game created", g)
}
