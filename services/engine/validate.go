package engine

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Stake admission rules, checked in order at placement time. These are
// policy, not persisted state.
var (
	ErrBelowMinimum      = errors.New("Minimum bet amount is $10")
	ErrInsufficientFunds = errors.New("Insufficient bankroll")
	ErrExceedsCap        = errors.New("Bet amount exceeds 20% of bankroll")
)

var (
	minStake = decimal.NewFromInt(10)
	capRatio = decimal.RequireFromString("0.2")
)

// ValidateStake gates a wager before it is accepted: at least $10, no more
// than the bankroll, and no more than 20% of it. First failure wins.
func ValidateStake(stake, bankroll decimal.Decimal) error {
	if stake.LessThan(minStake) {
		return ErrBelowMinimum
	}
	if stake.GreaterThan(bankroll) {
		return ErrInsufficientFunds
	}
	if stake.GreaterThan(bankroll.Mul(capRatio)) {
		return ErrExceedsCap
	}
	return nil
}
