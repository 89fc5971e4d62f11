package prediction

import (
	"fmt"
	"math/rand"

	"betsim/helpers"
	"betsim/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

var tagPool = []string{
	"Smart Money", "Fade Public", "Line Movement", "Weather", "Injury News",
	"Home Favorite", "Road Dog", "Value", "Steam", "Trap Game",
}

// Generate produces an advisory recommendation for a game from its posted
// markets. This is the templated heuristic generator: the edge score is a
// random draw, not analysis, and the record exists purely as display and
// prefill data for placing a bet.
func Generate(game *models.Game) models.Prediction {
	type candidate struct {
		pick      string
		betType   string
		reasoning string
	}

	var candidates []candidate
	if game.HomeSpread != nil {
		candidates = append(candidates,
			candidate{
				pick:      fmt.Sprintf("%s %s", game.AwayTeam, helpers.FormatLine(game.HomeSpread.Neg())),
				betType:   models.BetTypeSpread,
				reasoning: fmt.Sprintf("%s has been excellent against the spread as a road side this season", game.AwayTeam),
			},
			candidate{
				pick:      fmt.Sprintf("%s %s", game.HomeTeam, helpers.FormatLine(*game.HomeSpread)),
				betType:   models.BetTypeSpread,
				reasoning: fmt.Sprintf("%s covers at home more often than the market prices in", game.HomeTeam),
			})
	}
	if game.TotalPoints != nil {
		candidates = append(candidates,
			candidate{
				pick:      "Over " + game.TotalPoints.StringFixed(1),
				betType:   models.BetTypeTotal,
				reasoning: "Pace numbers point to more scoring than the posted total",
			},
			candidate{
				pick:      "Under " + game.TotalPoints.StringFixed(1),
				betType:   models.BetTypeTotal,
				reasoning: "Public heavily on the over, defensive matchup expected",
			})
	}
	candidates = append(candidates, candidate{
		pick:      game.HomeTeam + " ML",
		betType:   models.BetTypeMoneyline,
		reasoning: fmt.Sprintf("%s has a strong home record in this spot", game.HomeTeam),
	})

	chosen := candidates[rand.Intn(len(candidates))]

	edge := decimal.NewFromFloat(4 + rand.Float64()*4).Round(1)

	numTags := rand.Intn(3) + 1
	perm := rand.Perm(len(tagPool))
	tags := make([]string, 0, numTags)
	for _, idx := range perm[:numTags] {
		tags = append(tags, tagPool[idx])
	}

	return models.Prediction{
		GameID:          game.ID,
		RecommendedPick: chosen.pick,
		BetType:         chosen.betType,
		EdgeScore:       edge,
		ConfidenceTier:  TierFor(edge),
		Tags:            datatypes.NewJSONSlice(tags),
		Reasoning:       chosen.reasoning,
	}
}

// TierFor maps an edge score to its confidence tier.
func TierFor(edge decimal.Decimal) string {
	switch {
	case edge.GreaterThanOrEqual(decimal.RequireFromString("7.5")):
		return models.TierHigh
	case edge.GreaterThanOrEqual(decimal.RequireFromString("5.5")):
		return models.TierMedium
	default:
		return models.TierLow
	}
}
