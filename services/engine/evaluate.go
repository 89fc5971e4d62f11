package engine

import (
	"fmt"

	"betsim/models"

	"github.com/shopspring/decimal"
)

// UnsupportedBetTypeError marks bet types this engine cannot grade. Prop
// bets have no modeled outcome and must surface as an error, never as a
// silent loss.
type UnsupportedBetTypeError struct {
	BetType string
}

func (e *UnsupportedBetTypeError) Error() string {
	return fmt.Sprintf("unsupported bet type %q", e.BetType)
}

// MissingLineError is returned when a spread or total bet carries no line to
// grade against.
type MissingLineError struct {
	BetType string
}

func (e *MissingLineError) Error() string {
	return fmt.Sprintf("%s bet has no line to grade against", e.BetType)
}

// Evaluate grades a bet against a final score. Pure function of its inputs.
//
// Spread bets grade the home margin adjusted by the signed home spread; total
// bets grade the combined score against the captured line; moneyline bets
// grade the straight winner, with a tied game as a push (ties are not priced
// in this simulator's markets, so returning stakes is the only result that
// keeps money balanced).
func Evaluate(bet *models.Bet, game *models.Game, homeScore, awayScore int) (Outcome, error) {
	switch bet.BetType {
	case models.BetTypeSpread:
		line, err := betLine(bet, game.HomeSpread)
		if err != nil {
			return "", err
		}
		// Adjusted home margin; the line is signed from the home side.
		margin := decimal.NewFromInt(int64(homeScore)).Add(line).Sub(decimal.NewFromInt(int64(awayScore)))
		if margin.IsZero() {
			return OutcomePush, nil
		}
		homeCovers := margin.Sign() > 0
		if (bet.Side == models.SideHome) == homeCovers {
			return OutcomeWin, nil
		}
		return OutcomeLoss, nil

	case models.BetTypeMoneyline:
		if homeScore == awayScore {
			return OutcomePush, nil
		}
		homeWon := homeScore > awayScore
		if (bet.Side == models.SideHome) == homeWon {
			return OutcomeWin, nil
		}
		return OutcomeLoss, nil

	case models.BetTypeTotal:
		line, err := betLine(bet, game.TotalPoints)
		if err != nil {
			return "", err
		}
		total := decimal.NewFromInt(int64(homeScore + awayScore))
		cmp := total.Cmp(line)
		if cmp == 0 {
			return OutcomePush, nil
		}
		over := cmp > 0
		if (bet.Side == models.SideOver) == over {
			return OutcomeWin, nil
		}
		return OutcomeLoss, nil

	default:
		return "", &UnsupportedBetTypeError{BetType: bet.BetType}
	}
}

// betLine prefers the line captured on the bet at placement time and falls
// back to the game's current market.
func betLine(bet *models.Bet, gameLine *decimal.Decimal) (decimal.Decimal, error) {
	if bet.Line != nil {
		return *bet.Line, nil
	}
	if gameLine != nil {
		return *gameLine, nil
	}
	return decimal.Zero, &MissingLineError{BetType: bet.BetType}
}
