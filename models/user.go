package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Email        string          `gorm:"uniqueIndex;size:255" json:"email"`
	Username     string          `gorm:"uniqueIndex;size:64" json:"username"`
	PasswordHash string          `gorm:"size:255" json:"-"`
	Bankroll     decimal.Decimal `gorm:"type:numeric(12,2)" json:"bankroll"`

	Bets          []Bet           `gorm:"foreignKey:UserID" json:"-"`
	LedgerEntries []BankrollEntry `gorm:"foreignKey:UserID" json:"-"`
}

// Ledger entry types.
const (
	LedgerInitial   = "initial"
	LedgerBetPlaced = "bet_placed"
	LedgerBetPayout = "bet_payout"
)

// BankrollEntry is one row of the append-only bankroll ledger. Every
// mutation of User.Bankroll writes exactly one entry, so the history is
// exact: BalanceAfter = BalanceBefore + Amount, and the latest entry's
// BalanceAfter always equals the user's current bankroll.
type BankrollEntry struct {
	gorm.Model

	UserID        uint            `gorm:"index" json:"user_id"`
	EntryType     string          `gorm:"size:16;index" json:"entry_type"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	BalanceBefore decimal.Decimal `gorm:"type:numeric(12,2)" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:numeric(12,2)" json:"balance_after"`
	BetID         *uint           `gorm:"index" json:"bet_id,omitempty"`
	Note          string          `gorm:"size:255" json:"note,omitempty"`
}
