package shared

import (
	"context"
	"encoding/json"
	"time"

	"court-slot-engine/internal/pkg/errs"
)

// EnqueueEvent stores v as JSON in the outbox of the current transaction.
func EnqueueEvent(ctx context.Context, tx Tx, topic string, v any, at time.Time) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "failed to encode "+topic+" event")
	}
	return tx.Outbox().Enqueue(ctx, topic, payload, at)
}
