package repository

import (
	"context"

	"court-slot-engine/internal/domain/schedule"
	"court-slot-engine/internal/infra"
	"court-slot-engine/internal/infra/repository/converter"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ScheduleWriteQueries interface {
	ListSchedulesByResource(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) ([]sqlc.ScheduleDefinitions, error)
	CreateSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateScheduleParams) error
	DeleteSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteScheduleParams) (int64, error)
}

type ScheduleRepository struct {
	queries ScheduleWriteQueries
	db      sqlc.DBTX
}

func NewScheduleRepository(queries ScheduleWriteQueries, db sqlc.DBTX) *ScheduleRepository {
	return &ScheduleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleRepository) ListByResource(ctx context.Context, resourceID uuid.UUID) ([]*schedule.Definition, error) {
	rows, err := r.queries.ListSchedulesByResource(ctx, r.db, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedules", err)
	}

	defs := make([]*schedule.Definition, 0, len(rows))
	for _, row := range rows {
		d, err := converter.ScheduleFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode schedule", err)
		}
		defs = append(defs, d)
	}
	return defs, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, d *schedule.Definition) error {
	if err := r.queries.CreateSchedule(ctx, r.db, converter.ScheduleToCreateParams(d)); err != nil {
		return infra.WrapRepoErr("failed to create schedule", err)
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, resourceID, id uuid.UUID) error {
	n, err := r.queries.DeleteSchedule(ctx, r.db, sqlc.DeleteScheduleParams{ID: id, ResourceID: resourceID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete schedule", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("schedule not found", nil, infra.KindNotFound)
	}
	return nil
}
