package engine

import (
	"math/rand"

	"betsim/models"

	"github.com/shopspring/decimal"
)

// defaultTotal stands in when a game has no posted total line.
var defaultTotal = decimal.NewFromInt(200)

// SimulateScore produces a synthetic final score for a game. The home score
// is a random draw between 20% and 80% of the posted total, the away score
// is the remainder plus symmetric noise of up to 10 points either way. Both
// are clamped at zero. This is a placeholder oracle rather than a model:
// the only contract is non-negative integers and a non-deterministic pair.
func SimulateScore(game *models.Game) (homeScore, awayScore int) {
	total := defaultTotal
	if game.TotalPoints != nil {
		total = *game.TotalPoints
	}
	t := total.InexactFloat64()

	homeScore = rand.Intn(max(1, int(t*0.6))) + int(t*0.2)
	awayScore = int(t) - homeScore + rand.Intn(21) - 10

	if homeScore < 0 {
		homeScore = 0
	}
	if awayScore < 0 {
		awayScore = 0
	}
	return homeScore, awayScore
}
