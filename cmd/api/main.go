package main

import (
	"time"

	"go-hrledger/internal/app"
	"go-hrledger/internal/bootstrap"
	"go-hrledger/internal/shared/apperror"

	"github.com/gin-gonic/gin"
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

	apperror.Init()

	cfg := app.LoadConfig()

	registry, err := app.BuildRegistry(cfg)
	if err != nil {
		logger.Fatal("build registry failed", zap.Error(err))
	}

	r := gin.Default()
	registry.MountRoutes(r)

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		registry.AuditLogger,
	)
}
