package settlement

import (
	"errors"
	"fmt"
	"time"

	"betsim/database"
	"betsim/logger"
	"betsim/models"
	"betsim/services/engine"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrGameNotFound = errors.New("game not found")

// Result reports what a settlement call did.
type Result struct {
	HomeScore   int `json:"homeScore"`
	AwayScore   int `json:"awayScore"`
	SettledBets int `json:"settledBets"`
	SkippedBets int `json:"skippedBets"`
}

// SettleGame simulates a final score for the game and settles every pending
// wager on it, inside one transaction: either all wager updates and all
// bankroll credits commit, or none do.
//
// The simulated score is persisted and the game flipped to finished on first
// settlement. Calling again re-uses the stored score and finds no pending
// wagers, so a client retry is safe and changes nothing.
//
// Wagers are graded per bet but credited per owning user: payouts for wins
// and pushes are grouped by user and applied as one locked bankroll update
// plus one ledger entry each. Pushes are credited because the stake was
// deducted at placement; returning it is what keeps the books balanced.
// Wagers the engine cannot grade are logged, skipped and left pending.
func SettleGame(db *gorm.DB, gameID uint) (*Result, error) {
	res := &Result{}

	err := db.Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := database.LockForUpdate(tx).First(&game, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}
			return err
		}

		var homeScore, awayScore int
		if game.Status == models.GameFinished && game.HomeScore != nil && game.AwayScore != nil {
			homeScore, awayScore = *game.HomeScore, *game.AwayScore
		} else {
			homeScore, awayScore = engine.SimulateScore(&game)
			if err := tx.Model(&game).Updates(map[string]any{
				"status":     models.GameFinished,
				"home_score": homeScore,
				"away_score": awayScore,
			}).Error; err != nil {
				return err
			}
		}
		res.HomeScore, res.AwayScore = homeScore, awayScore

		var bets []models.Bet
		if err := database.LockForUpdate(tx).
			Where("game_id = ? AND status = ?", gameID, models.BetPending).
			Find(&bets).Error; err != nil {
			return err
		}

		now := time.Now()
		credits := make(map[uint]decimal.Decimal)

		for i := range bets {
			bet := &bets[i]

			outcome, err := engine.Evaluate(bet, &game, homeScore, awayScore)
			if err != nil {
				logger.Log.Warn("skipping ungradable bet",
					zap.Uint("bet_id", bet.ID),
					zap.String("bet_type", bet.BetType),
					zap.Error(err))
				res.SkippedBets++
				continue
			}

			payout, err := engine.Payout(bet.Amount, bet.Odds, outcome)
			if err != nil {
				logger.Log.Warn("skipping unpayable bet",
					zap.Uint("bet_id", bet.ID),
					zap.Int("odds", bet.Odds),
					zap.Error(err))
				res.SkippedBets++
				continue
			}

			// Guarded transition: pending leaves exactly once.
			upd := tx.Model(bet).
				Where("id = ? AND status = ?", bet.ID, models.BetPending).
				Updates(map[string]any{
					"status":     statusFor(outcome),
					"payout":     payout,
					"settled_at": now,
				})
			if upd.Error != nil {
				return upd.Error
			}
			if upd.RowsAffected == 0 {
				continue
			}
			res.SettledBets++

			if payout.Sign() > 0 {
				credits[bet.UserID] = credits[bet.UserID].Add(payout)
			}
		}

		for userID, amount := range credits {
			if err := creditUser(tx, userID, amount, gameID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("game settled",
		zap.Uint("game_id", gameID),
		zap.Int("home_score", res.HomeScore),
		zap.Int("away_score", res.AwayScore),
		zap.Int("settled_bets", res.SettledBets),
		zap.Int("skipped_bets", res.SkippedBets))
	return res, nil
}

func statusFor(outcome engine.Outcome) string {
	switch outcome {
	case engine.OutcomeWin:
		return models.BetWon
	case engine.OutcomePush:
		return models.BetPush
	default:
		return models.BetLost
	}
}

// creditUser applies one aggregate bankroll credit under a row lock and
// records it in the ledger.
func creditUser(tx *gorm.DB, userID uint, amount decimal.Decimal, gameID uint) error {
	var user models.User
	if err := database.LockForUpdate(tx).First(&user, userID).Error; err != nil {
		return err
	}

	before := user.Bankroll
	after := before.Add(amount)
	if err := tx.Model(&user).Update("bankroll", after).Error; err != nil {
		return err
	}

	return tx.Create(&models.BankrollEntry{
		UserID:        userID,
		EntryType:     models.LedgerBetPayout,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		Note:          fmt.Sprintf("settlement for game %d", gameID),
	}).Error
}
