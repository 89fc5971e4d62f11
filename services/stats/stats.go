package stats

import (
	"betsim/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BankrollPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type UserStats struct {
	TotalPL         decimal.Decimal `json:"totalPL"`
	WinRate         float64         `json:"winRate"`
	TotalBets       int             `json:"totalBets"`
	ROI             float64         `json:"roi"`
	CurrentStreak   int             `json:"currentStreak"`
	BankrollHistory []BankrollPoint `json:"bankrollHistory"`
}

// Compute derives performance stats from the user's settled wager history.
//
// Settled means any non-pending status, so pushes count toward totalBets and
// the ROI denominator while contributing zero profit. The streak counts
// consecutive most-recent wins by placement time; a push neither extends nor
// breaks it, a loss ends it. Bankroll history is read straight from the
// ledger, one point per recorded balance change.
func Compute(db *gorm.DB, userID uint) (*UserStats, error) {
	var bets []models.Bet
	if err := db.
		Where("user_id = ? AND status <> ?", userID, models.BetPending).
		Order("created_at DESC").
		Find(&bets).Error; err != nil {
		return nil, err
	}

	s := &UserStats{
		TotalPL:         decimal.Zero,
		TotalBets:       len(bets),
		BankrollHistory: []BankrollPoint{},
	}

	wins := 0
	wagered := decimal.Zero
	for i := range bets {
		bet := &bets[i]
		wagered = wagered.Add(bet.Amount)

		switch bet.Status {
		case models.BetWon:
			wins++
			if bet.Payout != nil {
				s.TotalPL = s.TotalPL.Add(bet.Payout.Sub(bet.Amount))
			}
		case models.BetLost:
			s.TotalPL = s.TotalPL.Sub(bet.Amount)
		}
	}

	if s.TotalBets > 0 {
		s.WinRate = float64(wins) / float64(s.TotalBets) * 100
	}
	if wagered.Sign() > 0 {
		s.ROI, _ = s.TotalPL.Div(wagered).Mul(decimal.NewFromInt(100)).Float64()
	}

	// bets are already newest-first.
streak:
	for i := range bets {
		switch bets[i].Status {
		case models.BetWon:
			s.CurrentStreak++
		case models.BetPush:
			continue
		default:
			break streak
		}
	}

	var entries []models.BankrollEntry
	if err := db.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	for i := range entries {
		s.BankrollHistory = append(s.BankrollHistory, BankrollPoint{
			Date:   entries[i].CreatedAt.Format("2006-01-02"),
			Amount: entries[i].BalanceAfter,
		})
	}

	return s, nil
}
