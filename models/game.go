package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Game lifecycle statuses.
const (
	GameUpcoming = "upcoming"
	GameLive     = "live"
	GameFinished = "finished"
)

type Game struct {
	gorm.Model

	HomeTeam string    `gorm:"size:64" json:"home_team"`
	AwayTeam string    `gorm:"size:64" json:"away_team"`
	Sport    string    `gorm:"size:8;index" json:"sport"`
	GameTime time.Time `gorm:"index" json:"game_time"`
	Status   string    `gorm:"size:16;default:upcoming;index" json:"status"`

	// Market lines. HomeSpread is signed from the home side; the away
	// spread is its negation. Nil means the market is not posted.
	HomeSpread    *decimal.Decimal `gorm:"type:numeric(5,1)" json:"home_spread,omitempty"`
	TotalPoints   *decimal.Decimal `gorm:"type:numeric(5,1)" json:"total_points,omitempty"`
	HomeMoneyline int              `json:"home_moneyline"`
	AwayMoneyline int              `json:"away_moneyline"`

	// Final score, persisted by settlement once the game is simulated.
	HomeScore *int `json:"home_score,omitempty"`
	AwayScore *int `json:"away_score,omitempty"`

	Predictions []Prediction `gorm:"foreignKey:GameID" json:"predictions,omitempty"`
}

// AwaySpread derives the away side of the spread market.
func (g *Game) AwaySpread() *decimal.Decimal {
	if g.HomeSpread == nil {
		return nil
	}
	neg := g.HomeSpread.Neg()
	return &neg
}
