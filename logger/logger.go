package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.Logger = zap.NewNop()

// Init builds the process-wide logger. ENV=local gets the human-readable
// development encoder, everything else gets production JSON.
func Init(env string) error {
	cfg := zap.NewProductionConfig()
	if env == "local" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.Fields(
		zap.String("service", "betsim"),
		zap.String("env", env),
	))
	if err != nil {
		return err
	}
	Log = l
	return nil
}
