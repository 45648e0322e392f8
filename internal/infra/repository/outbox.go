package repository

import (
	"context"
	"time"

	"court-slot-engine/internal/infra"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/pgconv"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	outboxStatusQueued = "queued"
	outboxStatusDead   = "dead"
)

type OutboxWriteQueries interface {
	EnqueueOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueOutboxEventParams) error
	ClaimDueOutboxEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueOutboxEventsParams) ([]sqlc.ClaimDueOutboxEventsRow, error)
	MarkOutboxEventSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventSentParams) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, topic string, payload []byte, runAt time.Time) error {
	err := r.queries.EnqueueOutboxEvent(ctx, r.db, sqlc.EnqueueOutboxEventParams{
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}

func (r *OutboxRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ClaimDueOutboxEvents(ctx, r.db, sqlc.ClaimDueOutboxEventsParams{
		RunAt: pgconv.TimeToPgtype(now),
		Limit: clampLimit(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}

	events := make([]shared.OutboxEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, shared.OutboxEvent{
			ID:       row.ID,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: int(row.Attempts),
		})
	}
	return events, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.queries.MarkOutboxEventSent(ctx, r.db, sqlc.MarkOutboxEventSentParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event sent", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string, nextRunAt time.Time, dead bool) error {
	status := outboxStatusQueued
	if dead {
		status = outboxStatusDead
	}
	err := r.queries.MarkOutboxEventFailed(ctx, r.db, sqlc.MarkOutboxEventFailedParams{
		ID:        id,
		Status:    status,
		LastError: pgconv.StringToPgtype(errMsg),
		RunAt:     pgconv.TimeToPgtype(nextRunAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
