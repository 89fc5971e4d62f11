package engine

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Outcome is the result of grading a bet against a final score.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomePush Outcome = "push"
)

var (
	ErrInvalidOdds  = errors.New("american odds of 0 are invalid")
	ErrInvalidStake = errors.New("stake must be positive")
)

var hundred = decimal.NewFromInt(100)

// Payout converts a stake and American odds into the amount returned to the
// bettor. A push returns the stake, a loss returns zero, and a win returns
// stake plus profit: stake*odds/100 for positive (underdog) odds,
// stake*100/|odds| for negative (favorite) odds. Odds are never zero in any
// real market, so zero is rejected rather than divided by.
func Payout(stake decimal.Decimal, odds int, outcome Outcome) (decimal.Decimal, error) {
	if stake.Sign() <= 0 {
		return decimal.Zero, ErrInvalidStake
	}
	if odds == 0 {
		return decimal.Zero, ErrInvalidOdds
	}

	switch outcome {
	case OutcomePush:
		return stake, nil
	case OutcomeLoss:
		return decimal.Zero, nil
	}

	var profit decimal.Decimal
	if odds > 0 {
		profit = stake.Mul(decimal.NewFromInt(int64(odds))).Div(hundred)
	} else {
		profit = stake.Mul(hundred).Div(decimal.NewFromInt(int64(-odds)))
	}
	return stake.Add(profit).Round(2), nil
}
