package jobs

import (
	"betsim/database"
	"betsim/logger"
	"betsim/models"
	"betsim/services/settlement"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartAutoSettler sweeps for games whose start time has passed and settles
// them, so a slate resolves itself without anyone calling the simulate
// endpoint. Settlement is idempotent, so overlapping with a manual simulate
// call is harmless.
func StartAutoSettler() *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@every 1m", settleOverdueGames)
	if err != nil {
		logger.Log.Fatal("failed to schedule auto-settler", zap.Error(err))
	}
	c.Start()
	logger.Log.Info("auto-settler started")
	return c
}

func settleOverdueGames() {
	var games []models.Game
	if err := database.DB.
		Where("status = ? AND game_time < NOW()", models.GameUpcoming).
		Find(&games).Error; err != nil {
		logger.Log.Error("auto-settler: failed to list overdue games", zap.Error(err))
		return
	}

	for i := range games {
		if _, err := settlement.SettleGame(database.DB, games[i].ID); err != nil {
			logger.Log.Error("auto-settler: failed to settle game",
				zap.Uint("game_id", games[i].ID), zap.Error(err))
		}
	}
}
