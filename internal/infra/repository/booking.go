package repository

import (
	"context"
	"time"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/infra"
	"court-slot-engine/internal/infra/repository/converter"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBookingState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStateParams) (int64, error)
	ListConfirmedBookingsEndedBefore(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConfirmedBookingsEndedBeforeParams) ([]sqlc.Bookings, error)
	ListPendingBookingsCreatedBefore(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPendingBookingsCreatedBeforeParams) ([]sqlc.Bookings, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	return toBooking(row, err)
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	return toBooking(row, err)
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingState(ctx, r.db, converter.BookingToStateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) ListConfirmedEndedBefore(ctx context.Context, t time.Time, limit int) ([]*booking.Booking, error) {
	rows, err := r.queries.ListConfirmedBookingsEndedBefore(ctx, r.db, sqlc.ListConfirmedBookingsEndedBeforeParams{
		EndsAt: pgconv.TimeToPgtype(t),
		Limit:  clampLimit(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list finished bookings", err)
	}
	return toBookings(rows)
}

func (r *BookingRepository) ListPendingCreatedBefore(ctx context.Context, t time.Time, limit int) ([]*booking.Booking, error) {
	rows, err := r.queries.ListPendingBookingsCreatedBefore(ctx, r.db, sqlc.ListPendingBookingsCreatedBeforeParams{
		CreatedAt: pgconv.TimeToPgtype(t),
		Limit:     clampLimit(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale pending bookings", err)
	}
	return toBookings(rows)
}

func toBooking(row sqlc.Bookings, err error) (*booking.Booking, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return b, nil
}

func toBookings(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return out, nil
}

func clampLimit(limit int) int32 {
	const maxBatch = 1000
	if limit <= 0 || limit > maxBatch {
		return maxBatch
	}
	return int32(limit) // #nosec G115 -- bounded above
}
