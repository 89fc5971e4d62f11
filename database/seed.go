package database

import (
	"time"

	"betsim/logger"
	"betsim/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Seed loads a demo slate of games and predictions. It is a no-op when any
// game already exists, so it is safe to leave DB_SEED on across restarts.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Game{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	games := []models.Game{
		{
			HomeTeam: "Lakers", AwayTeam: "Warriors", Sport: "NBA",
			GameTime: now.Add(4 * time.Hour), Status: models.GameUpcoming,
			HomeSpread: dec("-3.5"), TotalPoints: dec("225.5"),
			HomeMoneyline: -150, AwayMoneyline: 130,
		},
		{
			HomeTeam: "Celtics", AwayTeam: "Heat", Sport: "NBA",
			GameTime: now.Add(4*time.Hour + 30*time.Minute), Status: models.GameUpcoming,
			HomeSpread: dec("-5.5"), TotalPoints: dec("215.5"),
			HomeMoneyline: -200, AwayMoneyline: 170,
		},
		{
			HomeTeam: "Cowboys", AwayTeam: "Eagles", Sport: "NFL",
			GameTime: now.Add(6 * time.Hour), Status: models.GameUpcoming,
			HomeSpread: dec("-7.0"), TotalPoints: dec("47.5"),
			HomeMoneyline: -280, AwayMoneyline: 220,
		},
		{
			HomeTeam: "Yankees", AwayTeam: "Red Sox", Sport: "MLB",
			GameTime: now.Add(8 * time.Hour), Status: models.GameUpcoming,
			HomeSpread: dec("-1.5"), TotalPoints: dec("9.5"),
			HomeMoneyline: -165, AwayMoneyline: 145,
		},
		{
			HomeTeam: "Rangers", AwayTeam: "Bruins", Sport: "NHL",
			GameTime: now.Add(10 * time.Hour), Status: models.GameUpcoming,
			HomeSpread: dec("-1.5"), TotalPoints: dec("6.5"),
			HomeMoneyline: -140, AwayMoneyline: 120,
		},
	}

	if err := db.Create(&games).Error; err != nil {
		return err
	}

	predictions := []models.Prediction{
		{
			GameID: games[0].ID, RecommendedPick: "Warriors +3.5", BetType: models.BetTypeSpread,
			EdgeScore: decimal.RequireFromString("8.7"), ConfidenceTier: models.TierHigh,
			Tags:      datatypes.NewJSONSlice([]string{"Smart Money", "Line Movement"}),
			Reasoning: "Warriors have been excellent ATS as road underdogs this season",
		},
		{
			GameID: games[1].ID, RecommendedPick: "Under 215.5", BetType: models.BetTypeTotal,
			EdgeScore: decimal.RequireFromString("6.3"), ConfidenceTier: models.TierMedium,
			Tags:      datatypes.NewJSONSlice([]string{"Fade Public", "Weather"}),
			Reasoning: "Public heavily on over, defensive matchup expected",
		},
		{
			GameID: games[2].ID, RecommendedPick: "Eagles +7.0", BetType: models.BetTypeSpread,
			EdgeScore: decimal.RequireFromString("7.8"), ConfidenceTier: models.TierHigh,
			Tags:      datatypes.NewJSONSlice([]string{"Road Dog", "Value"}),
			Reasoning: "Eagles getting too many points in this divisional matchup",
		},
		{
			GameID: games[3].ID, RecommendedPick: "Over 9.5", BetType: models.BetTypeTotal,
			EdgeScore: decimal.RequireFromString("6.9"), ConfidenceTier: models.TierMedium,
			Tags:      datatypes.NewJSONSlice([]string{"Steam", "Weather"}),
			Reasoning: "Wind conditions favor offense, both bullpens have been shaky",
		},
		{
			GameID: games[4].ID, RecommendedPick: "Bruins ML", BetType: models.BetTypeMoneyline,
			EdgeScore: decimal.RequireFromString("5.4"), ConfidenceTier: models.TierLow,
			Tags:      datatypes.NewJSONSlice([]string{"Value", "Injury News"}),
			Reasoning: "Rangers missing key defenseman, Bruins good value as road favorite",
		},
	}

	if err := db.Create(&predictions).Error; err != nil {
		return err
	}

	logger.Log.Info("seeded demo slate",
		zap.Int("games", len(games)), zap.Int("predictions", len(predictions)))
	return nil
}
