package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"court-slot-engine/internal/handler/consumer"
	"court-slot-engine/internal/infra/mq"
	"court-slot-engine/internal/pkg/config"
	"court-slot-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		consumer.NewPaymentHandler,
	),
	fx.Invoke(StartPaymentConsumer),
)

// NewPublisher falls back to logging events when no broker is configured.
func NewPublisher(lc fx.Lifecycle, cfg config.Config) (commands.Publisher, error) {
	if cfg.AMQP.URL == "" {
		slog.Warn("AMQP_URL not set; booking events are logged instead of published")
		return mq.LogPublisher{}, nil
	}
	pub, err := mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func StartPaymentConsumer(lc fx.Lifecycle, cfg config.Config, h *consumer.PaymentHandler) error {
	if cfg.AMQP.URL == "" {
		return nil
	}
	c, err := mq.NewConsumer(mq.ConsumerConfig{
		URL:      cfg.AMQP.URL,
		Exchange: cfg.AMQP.Exchange,
		Queue:    cfg.AMQP.PaymentQueue,
		Keys:     cfg.AMQP.PaymentKeys,
		Prefetch: 16,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := c.Run(ctx, h); err != nil && !errors.Is(err, context.Canceled) {
					slog.Error("payment consumer stopped", "error", err)
				}
			}()
			slog.Info("payment consumer started", "queue", cfg.AMQP.PaymentQueue)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return c.Close()
		},
	})
	return nil
}
