//go:build unit || e2e

package builder

import (
	"time"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"
	"court-slot-engine/internal/domain/slot"
	reqdto "court-slot-engine/internal/handler/dto/request"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/pgconv"
	"court-slot-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ResourceID  uuid.UUID
	ScheduleID  uuid.UUID
	CustomerID  uuid.UUID
	Date        calendar.Date
	Start       calendar.TimeOfDay
	End         calendar.TimeOfDay
	BasePrice   int64
	Price       int64
	PromotionID *uuid.UUID
	Policy      booking.Policy
	SlotStatus  slot.Status
	Location    *time.Location
	Now         time.Time
}

// NewBookingBuilder books Monday 2025-06-02 10:00-11:00 UTC at 100000, one week ahead of Now.
func NewBookingBuilder() *BookingBuilder {
	date := calendar.NewDate(2025, time.June, 2)
	return &BookingBuilder{
		ResourceID: uuid.New(),
		ScheduleID: uuid.New(),
		CustomerID: uuid.New(),
		Date:       date,
		Start:      calendar.MustTimeOfDay(10, 0),
		End:        calendar.MustTimeOfDay(11, 0),
		BasePrice:  100000,
		Price:      100000,
		Policy:     booking.MustPolicy(30, 24, 50),
		SlotStatus: slot.StatusAvailable,
		Location:   time.UTC,
		Now:        time.Date(2025, time.May, 26, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildSlot() slot.AvailableSlot {
	return slot.AvailableSlot{
		ResourceID: b.ResourceID,
		ScheduleID: b.ScheduleID,
		Date:       b.Date,
		Start:      b.Start,
		End:        b.End,
		Price:      money.MustNew(b.BasePrice),
		Status:     b.SlotStatus,
	}
}

func (b *BookingBuilder) BuildTerms() booking.Terms {
	return booking.Terms{
		Location:    b.Location,
		Policy:      b.Policy,
		BasePrice:   money.MustNew(b.BasePrice),
		Price:       money.MustNew(b.Price),
		PromotionID: b.PromotionID,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.Book(b.BuildSlot(), b.CustomerID, b.Now, b.BuildTerms())
}

func (b *BookingBuilder) MustBuild() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

// BuildWithStatus books and then drives the booking into status.
func (b *BookingBuilder) BuildWithStatus(status booking.Status) *booking.Booking {
	bk := b.MustBuild()
	switch status {
	case booking.StatusConfirmed:
		_ = bk.Confirm(b.Now)
	case booking.StatusCompleted:
		_ = bk.Confirm(b.Now)
		_ = bk.Complete(bk.EndsAt())
	case booking.StatusCancelled:
		_, _ = bk.Cancel(b.Now)
	}
	return bk
}

// BuildInfra returns the row a pending booking is stored as.
func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	startsAt := b.Date.At(b.Start, b.Location)
	return sqlc.Bookings{
		ID:                      uuid.New(),
		ResourceID:              b.ResourceID,
		CustomerID:              b.CustomerID,
		SlotDate:                pgconv.DateToPgtype(b.Date),
		StartMinute:             int32(b.Start.Minutes()),
		EndMinute:               int32(b.End.Minutes()),
		StartsAt:                pgconv.TimeToPgtype(startsAt),
		EndsAt:                  pgconv.TimeToPgtype(startsAt.Add(time.Duration(b.End.Minutes()-b.Start.Minutes()) * time.Minute)),
		BasePrice:               b.BasePrice,
		Price:                   b.Price,
		PromotionID:             pgconv.UUIDPtrToPgtype(b.PromotionID),
		DepositPercentage:       pgconv.DecimalToNumeric(b.Policy.DepositPercentage().Decimal()),
		CancellationWindowHours: int32(b.Policy.CancellationWindowHours()),
		RefundPercentage:        pgconv.DecimalToNumeric(b.Policy.RefundPercentage().Decimal()),
		Status:                  string(booking.StatusPending),
		CreatedAt:               pgconv.TimeToPgtype(b.Now),
		UpdatedAt:               pgconv.TimeToPgtype(b.Now),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ResourceID: b.ResourceID,
		Date:       b.Date.String(),
		StartTime:  b.Start.String(),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	bk := b.MustBuild()
	return queries.NewBookingView(bk)
}

// Fluent builder methods
func (b *BookingBuilder) WithResourceID(id uuid.UUID) *BookingBuilder {
	b.ResourceID = id
	return b
}

func (b *BookingBuilder) WithCustomerID(id uuid.UUID) *BookingBuilder {
	b.CustomerID = id
	return b
}

func (b *BookingBuilder) WithSlot(date calendar.Date, start, end calendar.TimeOfDay) *BookingBuilder {
	b.Date = date
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithPrice(price int64) *BookingBuilder {
	b.BasePrice = price
	b.Price = price
	return b
}

func (b *BookingBuilder) WithDiscount(price int64, promotionID uuid.UUID) *BookingBuilder {
	b.Price = price
	b.PromotionID = &promotionID
	return b
}

func (b *BookingBuilder) WithPolicyValues(deposit, refund string, windowHours int) *BookingBuilder {
	p, err := booking.NewPolicy(decimal.RequireFromString(deposit), windowHours, decimal.RequireFromString(refund))
	if err != nil {
		panic(err)
	}
	b.Policy = p
	return b
}

func (b *BookingBuilder) WithPolicy(p booking.Policy) *BookingBuilder {
	b.Policy = p
	return b
}

func (b *BookingBuilder) WithSlotStatus(s slot.Status) *BookingBuilder {
	b.SlotStatus = s
	return b
}

func (b *BookingBuilder) WithLocation(loc *time.Location) *BookingBuilder {
	b.Location = loc
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}
