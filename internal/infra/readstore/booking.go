package readstore

import (
	"context"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/infra"
	"court-slot-engine/internal/infra/repository/converter"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/pgconv"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingListQueries interface {
	ListBookingsByCustomerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByCustomerFirstPageParams) ([]sqlc.Bookings, error)
	ListBookingsByCustomerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByCustomerKeysetParams) ([]sqlc.Bookings, error)
}

// BookingListReadStore pages a customer's bookings by (created_at, id) descending.
type BookingListReadStore struct {
	queries BookingListQueries
	db      sqlc.DBTX
}

func NewBookingListReadStore(queries BookingListQueries, db sqlc.DBTX) *BookingListReadStore {
	return &BookingListReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingListReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, after *shared.KeysetCursor, limit int) ([]*booking.Booking, error) {
	var (
		rows []sqlc.Bookings
		err  error
	)
	if after == nil {
		rows, err = r.queries.ListBookingsByCustomerFirstPage(ctx, r.db, sqlc.ListBookingsByCustomerFirstPageParams{
			CustomerID: customerID,
			Limit:      int32(limit), // #nosec G115 -- bounded by queries.ValidateLimit
		})
	} else {
		rows, err = r.queries.ListBookingsByCustomerKeyset(ctx, r.db, sqlc.ListBookingsByCustomerKeysetParams{
			CustomerID:      customerID,
			CursorCreatedAt: pgconv.TimeToPgtype(after.CreatedAt),
			CursorID:        after.ID,
			RowLimit:        int32(limit), // #nosec G115 -- bounded by queries.ValidateLimit
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	out, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return out, nil
}
