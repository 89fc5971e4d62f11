package engine

import (
	"testing"

	"betsim/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPick(t *testing.T) {
	game := testGame()

	tests := []struct {
		name     string
		betType  string
		side     string
		line     *decimal.Decimal
		expected string
	}{
		{"home spread", models.BetTypeSpread, models.SideHome, lp("-3.5"), "Lakers -3.5"},
		{"away spread is negated", models.BetTypeSpread, models.SideAway, lp("-3.5"), "Warriors +3.5"},
		{"home moneyline", models.BetTypeMoneyline, models.SideHome, nil, "Lakers ML"},
		{"away moneyline", models.BetTypeMoneyline, models.SideAway, nil, "Warriors ML"},
		{"over total", models.BetTypeTotal, models.SideOver, lp("220.5"), "Over 220.5"},
		{"under total", models.BetTypeTotal, models.SideUnder, lp("220.5"), "Under 220.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pick, err := BuildPick(game, tc.betType, tc.side, tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, pick)
		})
	}
}

func TestBuildPickRejectsBadSelections(t *testing.T) {
	game := testGame()

	_, err := BuildPick(game, models.BetTypeSpread, models.SideOver, lp("-3.5"))
	assert.ErrorIs(t, err, ErrInvalidSide)

	_, err = BuildPick(game, models.BetTypeTotal, models.SideHome, lp("220.5"))
	assert.ErrorIs(t, err, ErrInvalidSide)

	_, err = BuildPick(game, models.BetTypeSpread, models.SideHome, nil)
	var missing *MissingLineError
	assert.ErrorAs(t, err, &missing)

	_, err = BuildPick(game, models.BetTypeProp, models.SideHome, nil)
	var unsupported *UnsupportedBetTypeError
	assert.ErrorAs(t, err, &unsupported)
}
