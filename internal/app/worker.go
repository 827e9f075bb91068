package app

import (
	"context"
	"fmt"

	"go-hrledger/internal/messaging/kafka"
	"go-hrledger/internal/messaging/kafka/producer"
	"go-hrledger/internal/shared/connection"

	"go.uber.org/zap"
)

// RunOutboxWorker relays committed outbox events to kafka until the
// context is cancelled.
func RunOutboxWorker(ctx context.Context, cfg Config, logger *zap.Logger) error {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}

	writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
	if err != nil {
		return fmt.Errorf("connect kafka: %w", err)
	}
	defer writer.Close()

	outbox := kafka.NewOutboxRepository(sqlDB)
	producer.NewWorker(outbox, writer, logger, cfg.OutboxPollInterval).Run(ctx)
	return nil
}
