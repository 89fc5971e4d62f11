package bet

import (
	"errors"

	"betsim/database"
	"betsim/helpers"
	"betsim/models"
	"betsim/services/engine"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var validate = validator.New()

type PlaceBetRequest struct {
	GameID       uint            `json:"gameId" validate:"required"`
	BetType      string          `json:"betType" validate:"required,oneof=spread moneyline total prop"`
	Side         string          `json:"side" validate:"required,oneof=home away over under"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	Odds         *int            `json:"odds"`
	PredictionID *uint           `json:"predictionId"`
}

// Place admits a wager and debits its stake, all in one transaction with the
// user row locked so a concurrent settlement cannot interleave its credit.
// The pick string is generated from the structured side/line selection, and
// the market line in force at placement is frozen onto the bet for grading.
func Place(c *fiber.Ctx) error {
	u, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var req PlaceBetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "INVALID_BET_DATA")
	}

	if req.BetType == models.BetTypeProp {
		return helpers.JSONError(c, "Prop bets are not supported")
	}

	odds := -110
	if req.Odds != nil {
		odds = *req.Odds
	}
	if odds == 0 {
		return helpers.JSONError(c, "Odds of 0 are invalid")
	}

	var created models.Bet
	var failStatus int
	var failMsg string
	fail := func(status int, msg string) {
		failStatus, failMsg = status, msg
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := database.LockForUpdate(tx).First(&user, u.ID).Error; err != nil {
			return err
		}

		var game models.Game
		if err := tx.First(&game, req.GameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fail(fiber.StatusNotFound, "Game not found")
				return nil
			}
			return err
		}
		if game.Status != models.GameUpcoming {
			fail(fiber.StatusBadRequest, "Game is not open for betting")
			return nil
		}

		// Freeze the market line in force right now.
		var line *decimal.Decimal
		switch req.BetType {
		case models.BetTypeSpread:
			line = game.HomeSpread
		case models.BetTypeTotal:
			line = game.TotalPoints
		}

		pick, err := engine.BuildPick(&game, req.BetType, req.Side, line)
		if err != nil {
			fail(fiber.StatusBadRequest, err.Error())
			return nil
		}

		if err := engine.ValidateStake(req.Amount, user.Bankroll); err != nil {
			fail(fiber.StatusBadRequest, err.Error())
			return nil
		}

		created = models.Bet{
			UserID:       user.ID,
			GameID:       game.ID,
			PredictionID: req.PredictionID,
			BetType:      req.BetType,
			Side:         req.Side,
			Line:         line,
			Pick:         pick,
			Amount:       req.Amount,
			Odds:         odds,
			Status:       models.BetPending,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		before := user.Bankroll
		after := before.Sub(req.Amount)
		if err := tx.Model(&user).Update("bankroll", after).Error; err != nil {
			return err
		}
		return tx.Create(&models.BankrollEntry{
			UserID:        user.ID,
			EntryType:     models.LedgerBetPlaced,
			Amount:        req.Amount.Neg(),
			BalanceBefore: before,
			BalanceAfter:  after,
			BetID:         &created.ID,
			Note:          created.Pick,
		}).Error
	})
	if err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_PLACE_BET")
	}
	if failMsg != "" {
		return helpers.JSONErrorStatus(c, failStatus, failMsg)
	}

	return helpers.JSONSuccess(c, "Bet placed", created)
}
