package commands

import (
	"context"
	"log/slog"
	"time"

	"court-slot-engine/internal/pkg/clock"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/shared"
)

const (
	PublishSent    = "sent"
	PublishRetried = "retried"
	PublishDead    = "dead"

	maxPublishBackoff = 10 * time.Minute
)

// Publisher delivers one outbox payload under its topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// PublishMetrics counts dispatch results. A nil *metrics.Metrics is valid.
type PublishMetrics interface {
	OutboxPublished(result string)
}

type OutboxCommands interface {
	// DispatchDue publishes up to limit due events and returns how many were sent.
	DispatchDue(ctx context.Context, limit int) (int, error)
}

type outboxUseCaseImpl struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	metrics     PublishMetrics
	maxAttempts int
}

func NewOutboxUseCase(uow shared.UnitOfWork, pub Publisher, clk clock.Clock, m PublishMetrics, maxAttempts int) OutboxCommands {
	if m == nil {
		m = noopMetrics{}
	}
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &outboxUseCaseImpl{uow: uow, publisher: pub, clock: clk, metrics: m, maxAttempts: maxAttempts}
}

// DispatchDue claims, publishes and settles events in one unit of work so that claimed rows stay
// locked against other dispatchers until their outcome is recorded. A publish failure is recorded
// on the row and does not fail the batch.
func (uc *outboxUseCaseImpl) DispatchDue(ctx context.Context, limit int) (int, error) {
	now := uc.clock.Now()
	sent := 0

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		due, err := tx.Outbox().ClaimDue(ctx, now, limit)
		if err != nil {
			return repoErr(err, nil)
		}

		for _, ev := range due {
			if pubErr := uc.publisher.Publish(ctx, ev.Topic, ev.Payload); pubErr != nil {
				dead := ev.Attempts >= uc.maxAttempts
				next := now.Add(publishBackoff(ev.Attempts))
				if err := tx.Outbox().MarkFailed(ctx, ev.ID, pubErr.Error(), next, dead); err != nil {
					return repoErr(err, nil)
				}
				result := PublishRetried
				if dead {
					result = PublishDead
				}
				uc.metrics.OutboxPublished(result)
				slog.WarnContext(ctx, "failed to publish outbox event",
					"event_id", ev.ID, "topic", ev.Topic, "attempts", ev.Attempts, "dead", dead, "error", pubErr)
				continue
			}

			if err := tx.Outbox().MarkSent(ctx, ev.ID, now); err != nil {
				return repoErr(err, nil)
			}
			uc.metrics.OutboxPublished(PublishSent)
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to dispatch outbox")
	}
	return sent, nil
}

// publishBackoff doubles from one second per attempt, capped at maxPublishBackoff.
func publishBackoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	if attempts > 20 {
		return maxPublishBackoff
	}
	return min(time.Second<<(attempts-1), maxPublishBackoff)
}
