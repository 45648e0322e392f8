package booking

import (
	"errors"
	"time"

	"court-slot-engine/internal/domain/money"

	"github.com/shopspring/decimal"
)

var ErrInvalidPolicy = errors.New("invalid booking policy")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking still holds its slot.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Policy is the deposit and cancellation policy snapshotted onto a booking.
type Policy struct {
	depositPercentage       money.Percentage
	cancellationWindowHours int
	refundPercentage        money.Percentage
}

func NewPolicy(deposit decimal.Decimal, windowHours int, refund decimal.Decimal) (Policy, error) {
	dep, err := money.NewPercentage(deposit)
	if err != nil {
		return Policy{}, errors.Join(ErrInvalidPolicy, err)
	}
	ref, err := money.NewPercentage(refund)
	if err != nil {
		return Policy{}, errors.Join(ErrInvalidPolicy, err)
	}
	if windowHours < 0 {
		return Policy{}, ErrInvalidPolicy
	}
	return Policy{
		depositPercentage:       dep,
		cancellationWindowHours: windowHours,
		refundPercentage:        ref,
	}, nil
}

func MustPolicy(deposit float64, windowHours int, refund float64) Policy {
	p, err := NewPolicy(decimal.NewFromFloat(deposit), windowHours, decimal.NewFromFloat(refund))
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultPolicy takes a 30% deposit and refunds half up to 24 hours before start.
func DefaultPolicy() Policy {
	return MustPolicy(30, 24, 50)
}

func (p Policy) DepositPercentage() money.Percentage { return p.depositPercentage }
func (p Policy) CancellationWindowHours() int        { return p.cancellationWindowHours }
func (p Policy) RefundPercentage() money.Percentage  { return p.refundPercentage }

func (p Policy) CancellationWindow() time.Duration {
	return time.Duration(p.cancellationWindowHours) * time.Hour
}
