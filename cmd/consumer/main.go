package main

import (
	"context"
	"os/signal"
	"syscall"

	"go-hrledger/internal/app"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := app.LoadConfig()
	if err := app.RunSalaryPaidConsumer(ctx, cfg, logger); err != nil {
		logger.Fatal("salary paid consumer failed", zap.Error(err))
	}
}
