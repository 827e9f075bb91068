package app

import (
	"context"

	"go-hrledger/internal/messaging/kafka/consumer"
	"go-hrledger/internal/payslip"

	"go.uber.org/zap"
)

// RunSalaryPaidConsumer consumes paid salary events and renders
// payslips until the context is cancelled.
func RunSalaryPaidConsumer(ctx context.Context, cfg Config, logger *zap.Logger) error {
	renderer := payslip.NewRenderer(cfg.PayslipDir)
	c := consumer.NewSalaryPaidConsumer(cfg.KafkaBroker, cfg.KafkaGroupID, renderer, logger)
	defer c.Close()

	c.Run(ctx)
	return nil
}
