package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bet types.
const (
	BetTypeSpread    = "spread"
	BetTypeMoneyline = "moneyline"
	BetTypeTotal     = "total"
	BetTypeProp      = "prop"
)

// Bet sides. Spread and moneyline bets pick a team side, total bets pick a
// direction against the posted line.
const (
	SideHome  = "home"
	SideAway  = "away"
	SideOver  = "over"
	SideUnder = "under"
)

// Bet statuses. A bet leaves pending exactly once and never returns.
const (
	BetPending = "pending"
	BetWon     = "won"
	BetLost    = "lost"
	BetPush    = "push"
)

type Bet struct {
	gorm.Model

	UserID       uint  `gorm:"index" json:"user_id"`
	GameID       uint  `gorm:"index" json:"game_id"`
	PredictionID *uint `gorm:"index" json:"prediction_id,omitempty"`

	BetType string `gorm:"size:16" json:"bet_type"`
	Side    string `gorm:"size:8" json:"side"`

	// Line is the market number captured at placement time. For spread
	// bets it is always the home side's signed line regardless of which
	// side was picked; for total bets it is the posted total. Nil for
	// moneyline bets. Settlement grades against this value, not whatever
	// the game line moved to afterwards.
	Line *decimal.Decimal `gorm:"type:numeric(5,1)" json:"line,omitempty"`

	// Pick is the display string generated from the structured selection
	// ("Warriors +3.5", "Over 220.5", "Lakers ML"). Never parsed back.
	Pick string `gorm:"size:128" json:"pick"`

	Amount decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	Odds   int             `gorm:"default:-110" json:"odds"`

	Status    string           `gorm:"size:8;default:pending;index" json:"status"`
	Payout    *decimal.Decimal `gorm:"type:numeric(12,2)" json:"payout,omitempty"`
	SettledAt *time.Time       `json:"settled_at,omitempty"`

	Game Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
}
