package game

import (
	"errors"

	"betsim/database"
	"betsim/helpers"
	"betsim/services/settlement"

	"github.com/gofiber/fiber/v2"
)

// Simulate runs the settlement orchestrator for a game: draws a final
// score, settles every pending wager on it, and credits bankrolls. Safe to
// retry; an already-settled game re-uses its score and settles nothing new.
func Simulate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_GAME_ID")
	}

	result, err := settlement.SettleGame(database.DB, uint(id))
	if err != nil {
		if errors.Is(err, settlement.ErrGameNotFound) {
			return helpers.JSONNotFound(c, "Game not found")
		}
		return helpers.JSONInternal(c, "FAILED_TO_SIMULATE_GAME")
	}

	return helpers.JSONSuccess(c, "Game simulated", fiber.Map{
		"gameResult": fiber.Map{
			"homeScore": result.HomeScore,
			"awayScore": result.AwayScore,
		},
		"updatedBets": result.SettledBets,
		"skippedBets": result.SkippedBets,
	})
}
