package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"go-hrledger/internal/events"
	"go-hrledger/internal/payslip"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// SalaryPaidConsumer renders a payslip for every paid salary event.
type SalaryPaidConsumer struct {
	reader   *kafkago.Reader
	renderer *payslip.Renderer
	logger   *zap.Logger
}

func NewSalaryPaidConsumer(broker, groupID string, renderer *payslip.Renderer, logger *zap.Logger) *SalaryPaidConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: []string{broker},
		GroupID: groupID,
		Topic:   events.SalaryPaidTopic,
	})
	return &SalaryPaidConsumer{
		reader:   reader,
		renderer: renderer,
		logger:   logger.Named("kafka.consumer.salary_paid"),
	}
}

// Run blocks until the context is cancelled. Malformed or failing
// messages are logged and skipped; the payment itself is already
// committed, so the payslip is retried only by re-delivery.
func (c *SalaryPaidConsumer) Run(ctx context.Context) {
	c.logger.Info("salary paid consumer started", zap.String("topic", events.SalaryPaidTopic))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				c.logger.Info("salary paid consumer stopped")
				return
			}
			c.logger.Error("fetch message failed", zap.Error(err))
			continue
		}

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("commit message failed", zap.Error(err))
		}
	}
}

func (c *SalaryPaidConsumer) handle(_ context.Context, msg kafkago.Message) {
	var evt events.SalaryPaidEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		c.logger.Error("decode salary paid event failed",
			zap.String("key", string(msg.Key)),
			zap.Error(err),
		)
		return
	}

	path, err := c.renderer.Render(evt)
	if err != nil {
		c.logger.Error("render payslip failed",
			zap.String("salary_id", evt.SalaryID),
			zap.Error(err),
		)
		return
	}

	c.logger.Info("payslip rendered",
		zap.String("salary_id", evt.SalaryID),
		zap.String("employee_id", evt.EmployeeID),
		zap.String("path", path),
	)
}

func (c *SalaryPaidConsumer) Close() error {
	return c.reader.Close()
}
