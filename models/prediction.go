package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Confidence tiers derived from the edge score.
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// Prediction is advisory metadata attached to a game. It is immutable once
// created and is only display/prefill input for placing a bet; settlement
// never reads it.
type Prediction struct {
	gorm.Model

	GameID          uint                        `gorm:"index" json:"game_id"`
	RecommendedPick string                      `gorm:"size:128" json:"recommended_pick"`
	BetType         string                      `gorm:"size:16" json:"bet_type"`
	EdgeScore       decimal.Decimal             `gorm:"type:numeric(3,1)" json:"edge_score"`
	ConfidenceTier  string                      `gorm:"size:8" json:"confidence_tier"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`
	Reasoning       string                      `gorm:"size:512" json:"reasoning,omitempty"`
}
