package converter

import (
	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/pgconv"
)

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	policy, err := policyFromColumns(row.DepositPercentage, row.CancellationWindowHours, row.RefundPercentage)
	if err != nil {
		return nil, err
	}
	start, err := calendar.TimeOfDayFromMinutes(int(row.StartMinute))
	if err != nil {
		return nil, err
	}
	end, err := calendar.TimeOfDayFromMinutes(int(row.EndMinute))
	if err != nil {
		return nil, err
	}
	base, err := money.New(row.BasePrice)
	if err != nil {
		return nil, err
	}
	price, err := money.New(row.Price)
	if err != nil {
		return nil, err
	}
	refund, err := money.New(row.RefundAmount)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(booking.Snapshot{
		ID:           row.ID,
		ResourceID:   row.ResourceID,
		CustomerID:   row.CustomerID,
		Date:         pgconv.DateFromPgtype(row.SlotDate),
		Start:        start,
		End:          end,
		StartsAt:     pgconv.TimeFromPgtype(row.StartsAt),
		EndsAt:       pgconv.TimeFromPgtype(row.EndsAt),
		BasePrice:    base,
		Price:        price,
		PromotionID:  pgconv.UUIDPtrFromPgtype(row.PromotionID),
		Policy:       policy,
		Status:       booking.Status(row.Status),
		RefundAmount: refund,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
		ConfirmedAt:  pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		CancelledAt:  pgconv.TimePtrFromPgtype(row.CancelledAt),
		CompletedAt:  pgconv.TimePtrFromPgtype(row.CompletedAt),
	}), nil
}

func BookingsFromRows(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	p := b.Policy()
	return sqlc.CreateBookingParams{
		ID:                      b.ID(),
		ResourceID:              b.ResourceID(),
		CustomerID:              b.CustomerID(),
		SlotDate:                pgconv.DateToPgtype(b.Date()),
		StartMinute:             int32(b.Start().Minutes()), // #nosec G115 -- bounded by MinutesPerDay
		EndMinute:               int32(b.End().Minutes()),   // #nosec G115 -- bounded by MinutesPerDay
		StartsAt:                pgconv.TimeToPgtype(b.StartsAt()),
		EndsAt:                  pgconv.TimeToPgtype(b.EndsAt()),
		BasePrice:               b.BasePrice().Amount(),
		Price:                   b.Price().Amount(),
		PromotionID:             pgconv.UUIDPtrToPgtype(b.PromotionID()),
		DepositPercentage:       pgconv.DecimalToNumeric(p.DepositPercentage().Decimal()),
		CancellationWindowHours: int32(p.CancellationWindowHours()), // #nosec G115 -- validated by booking.NewPolicy
		RefundPercentage:        pgconv.DecimalToNumeric(p.RefundPercentage().Decimal()),
		Status:                  b.Status().String(),
		RefundAmount:            b.RefundAmount().Amount(),
		CreatedAt:               pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:               pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToStateParams(b *booking.Booking) sqlc.UpdateBookingStateParams {
	return sqlc.UpdateBookingStateParams{
		ID:           b.ID(),
		Status:       b.Status().String(),
		RefundAmount: b.RefundAmount().Amount(),
		UpdatedAt:    pgconv.TimeToPgtype(b.UpdatedAt()),
		ConfirmedAt:  pgconv.TimePtrToPgtype(b.ConfirmedAt()),
		CancelledAt:  pgconv.TimePtrToPgtype(b.CancelledAt()),
		CompletedAt:  pgconv.TimePtrToPgtype(b.CompletedAt()),
	}
}
