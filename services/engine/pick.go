package engine

import (
	"errors"
	"fmt"

	"betsim/helpers"
	"betsim/models"

	"github.com/shopspring/decimal"
)

var ErrInvalidSide = errors.New("invalid side for bet type")

// BuildPick renders the display string for a structured selection. The
// string exists for humans only; grading always runs off the structured
// side and line, never off this text.
func BuildPick(game *models.Game, betType, side string, line *decimal.Decimal) (string, error) {
	switch betType {
	case models.BetTypeSpread:
		if line == nil {
			return "", &MissingLineError{BetType: betType}
		}
		switch side {
		case models.SideHome:
			return fmt.Sprintf("%s %s", game.HomeTeam, helpers.FormatLine(*line)), nil
		case models.SideAway:
			return fmt.Sprintf("%s %s", game.AwayTeam, helpers.FormatLine(line.Neg())), nil
		}
		return "", ErrInvalidSide

	case models.BetTypeMoneyline:
		switch side {
		case models.SideHome:
			return game.HomeTeam + " ML", nil
		case models.SideAway:
			return game.AwayTeam + " ML", nil
		}
		return "", ErrInvalidSide

	case models.BetTypeTotal:
		if line == nil {
			return "", &MissingLineError{BetType: betType}
		}
		switch side {
		case models.SideOver:
			return "Over " + line.StringFixed(1), nil
		case models.SideUnder:
			return "Under " + line.StringFixed(1), nil
		}
		return "", ErrInvalidSide

	default:
		return "", &UnsupportedBetTypeError{BetType: betType}
	}
}
