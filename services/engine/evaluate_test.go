package engine

import (
	"testing"

	"betsim/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func testGame() *models.Game {
	return &models.Game{
		HomeTeam:    "Lakers",
		AwayTeam:    "Warriors",
		HomeSpread:  lp("-3.5"),
		TotalPoints: lp("220.5"),
	}
}

func TestEvaluateSpread(t *testing.T) {
	tests := []struct {
		name       string
		side       string
		line       string
		home, away int
		expected   Outcome
	}{
		// (110 - 3.5) - 100 = 6.5 > 0: home covers
		{"home covers", models.SideHome, "-3.5", 110, 100, OutcomeWin},
		{"away side loses when home covers", models.SideAway, "-3.5", 110, 100, OutcomeLoss},
		{"home fails to cover", models.SideHome, "-3.5", 102, 100, OutcomeLoss},
		{"away cashes when home fails to cover", models.SideAway, "-3.5", 102, 100, OutcomeWin},
		{"exact margin pushes home", models.SideHome, "-10.0", 110, 100, OutcomePush},
		{"exact margin pushes away", models.SideAway, "-10.0", 110, 100, OutcomePush},
		{"home underdog keeps it close", models.SideHome, "+6.5", 98, 100, OutcomeWin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bet := &models.Bet{BetType: models.BetTypeSpread, Side: tc.side, Line: lp(tc.line)}
			outcome, err := Evaluate(bet, testGame(), tc.home, tc.away)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, outcome)
		})
	}
}

func TestEvaluateMoneyline(t *testing.T) {
	tests := []struct {
		name       string
		side       string
		home, away int
		expected   Outcome
	}{
		{"away team wins outright", models.SideAway, 90, 95, OutcomeWin},
		{"home side loses when away wins", models.SideHome, 90, 95, OutcomeLoss},
		{"home team wins outright", models.SideHome, 101, 95, OutcomeWin},
		{"tie pushes home side", models.SideHome, 95, 95, OutcomePush},
		{"tie pushes away side", models.SideAway, 95, 95, OutcomePush},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bet := &models.Bet{BetType: models.BetTypeMoneyline, Side: tc.side}
			outcome, err := Evaluate(bet, testGame(), tc.home, tc.away)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, outcome)
		})
	}
}

func TestEvaluateTotal(t *testing.T) {
	tests := []struct {
		name       string
		side       string
		line       string
		home, away int
		expected   Outcome
	}{
		// 115 + 108 = 223 > 220.5
		{"over cashes", models.SideOver, "220.5", 115, 108, OutcomeWin},
		{"under loses over the line", models.SideUnder, "220.5", 115, 108, OutcomeLoss},
		{"under cashes", models.SideUnder, "220.5", 105, 108, OutcomeWin},
		{"landing on the number pushes over", models.SideOver, "223.0", 115, 108, OutcomePush},
		{"landing on the number pushes under", models.SideUnder, "223.0", 115, 108, OutcomePush},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bet := &models.Bet{BetType: models.BetTypeTotal, Side: tc.side, Line: lp(tc.line)}
			outcome, err := Evaluate(bet, testGame(), tc.home, tc.away)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, outcome)
		})
	}
}

func TestEvaluateFallsBackToGameLine(t *testing.T) {
	bet := &models.Bet{BetType: models.BetTypeSpread, Side: models.SideHome}
	outcome, err := Evaluate(bet, testGame(), 110, 100)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWin, outcome)
}

func TestEvaluateUnsupportedBetType(t *testing.T) {
	bet := &models.Bet{BetType: models.BetTypeProp, Side: models.SideHome}
	_, err := Evaluate(bet, testGame(), 110, 100)

	var unsupported *UnsupportedBetTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, models.BetTypeProp, unsupported.BetType)
}

func TestEvaluateMissingLine(t *testing.T) {
	game := &models.Game{HomeTeam: "Lakers", AwayTeam: "Warriors"}
	bet := &models.Bet{BetType: models.BetTypeTotal, Side: models.SideOver}
	_, err := Evaluate(bet, game, 110, 100)

	var missing *MissingLineError
	require.ErrorAs(t, err, &missing)
}
