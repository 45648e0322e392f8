package repository

import (
	"context"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/slot"
	"court-slot-engine/internal/infra"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/clock"
	"court-slot-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotStateWriteQueries interface {
	ListSlotStatesInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSlotStatesInRangeParams) ([]sqlc.SlotStates, error)
	GetSlotState(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSlotStateParams) (sqlc.SlotStates, error)
	InsertSlotState(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSlotStateParams) error
	DeleteBookedSlotState(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteBookedSlotStateParams) (int64, error)
	DeleteMaintenanceSlotState(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteMaintenanceSlotStateParams) (int64, error)
}

// SlotStateRepository persists booked and maintenance marks. The primary key on
// (resource_id, slot_date, start_minute) rejects a second claim of the same slot.
type SlotStateRepository struct {
	queries SlotStateWriteQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

func NewSlotStateRepository(queries SlotStateWriteQueries, db sqlc.DBTX, clk clock.Clock) *SlotStateRepository {
	return &SlotStateRepository{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (r *SlotStateRepository) ListRange(ctx context.Context, resourceID uuid.UUID, from, to calendar.Date) (slot.BookedIndex, error) {
	rows, err := r.queries.ListSlotStatesInRange(ctx, r.db, sqlc.ListSlotStatesInRangeParams{
		ResourceID: resourceID,
		FromDate:   pgconv.DateToPgtype(from),
		ToDate:     pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slot states", err)
	}

	idx := make(slot.BookedIndex, len(rows))
	for _, row := range rows {
		key, err := keyFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode slot state", err)
		}
		if err := idx.Mark(key, slot.Status(row.Status)); err != nil {
			return nil, infra.WrapRepoErr("failed to decode slot state", err)
		}
	}
	return idx, nil
}

func (r *SlotStateRepository) Get(ctx context.Context, key slot.Key) (slot.Status, bool, error) {
	row, err := r.queries.GetSlotState(ctx, r.db, sqlc.GetSlotStateParams{
		ResourceID:  key.ResourceID,
		SlotDate:    pgconv.DateToPgtype(key.Date),
		StartMinute: startMinute(key),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", false, nil
		}
		return "", false, infra.WrapRepoErr("failed to get slot state", err)
	}
	return slot.Status(row.Status), true, nil
}

func (r *SlotStateRepository) Claim(ctx context.Context, key slot.Key, bookingID uuid.UUID) error {
	err := r.queries.InsertSlotState(ctx, r.db, sqlc.InsertSlotStateParams{
		ResourceID:  key.ResourceID,
		SlotDate:    pgconv.DateToPgtype(key.Date),
		StartMinute: startMinute(key),
		Status:      slot.StatusBooked.String(),
		BookingID:   pgconv.UUIDToPgtype(bookingID),
		UpdatedAt:   pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to claim slot "+key.String(), err)
	}
	return nil
}

func (r *SlotStateRepository) Release(ctx context.Context, key slot.Key, bookingID uuid.UUID) error {
	n, err := r.queries.DeleteBookedSlotState(ctx, r.db, sqlc.DeleteBookedSlotStateParams{
		ResourceID:  key.ResourceID,
		SlotDate:    pgconv.DateToPgtype(key.Date),
		StartMinute: startMinute(key),
		BookingID:   pgconv.UUIDToPgtype(bookingID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release slot "+key.String(), err)
	}
	if n == 0 {
		return infra.WrapRepoErr("slot claim not found "+key.String(), nil, infra.KindNotFound)
	}
	return nil
}

// SetMaintenance adds or removes a maintenance mark. Clearing an unmarked slot is a no-op.
func (r *SlotStateRepository) SetMaintenance(ctx context.Context, key slot.Key, enabled bool) error {
	if !enabled {
		if _, err := r.queries.DeleteMaintenanceSlotState(ctx, r.db, sqlc.DeleteMaintenanceSlotStateParams{
			ResourceID:  key.ResourceID,
			SlotDate:    pgconv.DateToPgtype(key.Date),
			StartMinute: startMinute(key),
		}); err != nil {
			return infra.WrapRepoErr("failed to clear maintenance "+key.String(), err)
		}
		return nil
	}

	err := r.queries.InsertSlotState(ctx, r.db, sqlc.InsertSlotStateParams{
		ResourceID:  key.ResourceID,
		SlotDate:    pgconv.DateToPgtype(key.Date),
		StartMinute: startMinute(key),
		Status:      slot.StatusMaintenance.String(),
		BookingID:   pgtype.UUID{Valid: false},
		UpdatedAt:   pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set maintenance "+key.String(), err)
	}
	return nil
}

func keyFromRow(row sqlc.SlotStates) (slot.Key, error) {
	start, err := calendar.TimeOfDayFromMinutes(int(row.StartMinute))
	if err != nil {
		return slot.Key{}, err
	}
	return slot.NewKey(row.ResourceID, pgconv.DateFromPgtype(row.SlotDate), start), nil
}

func startMinute(k slot.Key) int32 {
	return int32(k.Start.Minutes()) // #nosec G115 -- bounded by MinutesPerDay
}
