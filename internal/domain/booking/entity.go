package booking

import (
	"errors"
	"time"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"
	"court-slot-engine/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrSlotUnavailable     = errors.New("slot is not available")
	ErrInvalidState        = errors.New("booking is not in a valid state for this transition")
	ErrSlotNotFinished     = errors.New("slot has not finished yet")
	ErrInsufficientDeposit = errors.New("paid amount is below the required deposit")
	ErrBookingNotFound     = errors.New("booking not found")
)

// Terms carries what Book needs beyond the slot itself.
type Terms struct {
	Location    *time.Location
	Policy      Policy
	BasePrice   money.Money
	Price       money.Money
	PromotionID *uuid.UUID
}

type Booking struct {
	id           uuid.UUID
	resourceID   uuid.UUID
	customerID   uuid.UUID
	date         calendar.Date
	start        calendar.TimeOfDay
	end          calendar.TimeOfDay
	startsAt     time.Time
	endsAt       time.Time
	basePrice    money.Money
	price        money.Money
	promotionID  *uuid.UUID
	policy       Policy
	status       Status
	refundAmount money.Money
	createdAt    time.Time
	updatedAt    time.Time
	confirmedAt  *time.Time
	cancelledAt  *time.Time
	completedAt  *time.Time
}

// Book creates a pending booking for an available slot that has not started yet.
func Book(s slot.AvailableSlot, customerID uuid.UUID, now time.Time, terms Terms) (*Booking, error) {
	if s.Status != slot.StatusAvailable {
		return nil, ErrSlotUnavailable
	}
	loc := terms.Location
	if loc == nil {
		loc = time.UTC
	}
	startsAt := s.Date.At(s.Start, loc)
	if !startsAt.After(now) {
		return nil, ErrSlotUnavailable
	}

	return &Booking{
		id:          uuid.New(),
		resourceID:  s.ResourceID,
		customerID:  customerID,
		date:        s.Date,
		start:       s.Start,
		end:         s.End,
		startsAt:    startsAt,
		endsAt:      s.Date.At(s.End, loc),
		basePrice:   terms.BasePrice,
		price:       terms.Price,
		promotionID: terms.PromotionID,
		policy:      terms.Policy,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

type Snapshot struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	CustomerID   uuid.UUID
	Date         calendar.Date
	Start        calendar.TimeOfDay
	End          calendar.TimeOfDay
	StartsAt     time.Time
	EndsAt       time.Time
	BasePrice    money.Money
	Price        money.Money
	PromotionID  *uuid.UUID
	Policy       Policy
	Status       Status
	RefundAmount money.Money
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ConfirmedAt  *time.Time
	CancelledAt  *time.Time
	CompletedAt  *time.Time
}

// Reconstruct rebuilds a persisted booking.
func Reconstruct(s Snapshot) *Booking {
	return &Booking{
		id:           s.ID,
		resourceID:   s.ResourceID,
		customerID:   s.CustomerID,
		date:         s.Date,
		start:        s.Start,
		end:          s.End,
		startsAt:     s.StartsAt,
		endsAt:       s.EndsAt,
		basePrice:    s.BasePrice,
		price:        s.Price,
		promotionID:  s.PromotionID,
		policy:       s.Policy,
		status:       s.Status,
		refundAmount: s.RefundAmount,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
		confirmedAt:  s.ConfirmedAt,
		cancelledAt:  s.CancelledAt,
		completedAt:  s.CompletedAt,
	}
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:           b.id,
		ResourceID:   b.resourceID,
		CustomerID:   b.customerID,
		Date:         b.date,
		Start:        b.start,
		End:          b.end,
		StartsAt:     b.startsAt,
		EndsAt:       b.endsAt,
		BasePrice:    b.basePrice,
		Price:        b.price,
		PromotionID:  b.promotionID,
		Policy:       b.policy,
		Status:       b.status,
		RefundAmount: b.refundAmount,
		CreatedAt:    b.createdAt,
		UpdatedAt:    b.updatedAt,
		ConfirmedAt:  b.confirmedAt,
		CancelledAt:  b.cancelledAt,
		CompletedAt:  b.completedAt,
	}
}

// Cancel moves a pending or confirmed booking to cancelled and returns the refund.
// The refund applies when at least the policy window remains before start.
func (b *Booking) Cancel(now time.Time) (money.Money, error) {
	if !b.status.IsActive() {
		return money.Zero(), ErrInvalidState
	}
	refund := money.Zero()
	if b.startsAt.Sub(now) >= b.policy.CancellationWindow() {
		refund = b.price.Percent(b.policy.RefundPercentage())
	}
	b.status = StatusCancelled
	b.refundAmount = refund
	b.cancelledAt = &now
	b.updatedAt = now
	return refund, nil
}

// Expire cancels an unpaid pending booking without refund.
func (b *Booking) Expire(now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidState
	}
	b.status = StatusCancelled
	b.refundAmount = money.Zero()
	b.cancelledAt = &now
	b.updatedAt = now
	return nil
}

func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidState
	}
	b.status = StatusConfirmed
	b.confirmedAt = &now
	b.updatedAt = now
	return nil
}

// ConfirmPayment confirms the booking once at least the deposit has been paid.
func (b *Booking) ConfirmPayment(paid money.Money, now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidState
	}
	if paid.LessThan(b.Deposit()) {
		return ErrInsufficientDeposit
	}
	return b.Confirm(now)
}

func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidState
	}
	if now.Before(b.endsAt) {
		return ErrSlotNotFinished
	}
	b.status = StatusCompleted
	b.completedAt = &now
	b.updatedAt = now
	return nil
}

// Deposit is floor(price * deposit% / 100).
func (b *Booking) Deposit() money.Money {
	return b.price.Percent(b.policy.DepositPercentage())
}

func (b *Booking) SlotKey() slot.Key {
	return slot.NewKey(b.resourceID, b.date, b.start)
}

func (b *Booking) IsCustomer(userID uuid.UUID) bool {
	return b.customerID == userID
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) ResourceID() uuid.UUID      { return b.resourceID }
func (b *Booking) CustomerID() uuid.UUID      { return b.customerID }
func (b *Booking) Date() calendar.Date        { return b.date }
func (b *Booking) Start() calendar.TimeOfDay  { return b.start }
func (b *Booking) End() calendar.TimeOfDay    { return b.end }
func (b *Booking) StartsAt() time.Time        { return b.startsAt }
func (b *Booking) EndsAt() time.Time          { return b.endsAt }
func (b *Booking) BasePrice() money.Money     { return b.basePrice }
func (b *Booking) Price() money.Money         { return b.price }
func (b *Booking) PromotionID() *uuid.UUID    { return b.promotionID }
func (b *Booking) Policy() Policy             { return b.policy }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) RefundAmount() money.Money  { return b.refundAmount }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
func (b *Booking) ConfirmedAt() *time.Time    { return b.confirmedAt }
func (b *Booking) CancelledAt() *time.Time    { return b.cancelledAt }
func (b *Booking) CompletedAt() *time.Time    { return b.completedAt }
