package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"betsim/database"
	"betsim/jobs"
	"betsim/logger"
	"betsim/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(err)
	}
	defer logger.Log.Sync()

	database.Connect()

	host := os.Getenv("HOST")
	port := os.Getenv("PORT")

	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3000"
	}

	app := fiber.New()
	routes.Setup(app)

	if autoSettle, _ := strconv.ParseBool(os.Getenv("AUTO_SETTLE")); autoSettle {
		jobs.StartAutoSettler()
	}

	addr := fmt.Sprintf("%s:%s", host, port)
	logger.Log.Info("server running", zap.String("addr", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Log.Info("gracefully shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Log.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Log.Info("server exited cleanly")
}
