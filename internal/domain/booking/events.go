package booking

import (
	"time"

	"github.com/google/uuid"
)

const (
	TopicCreated   = "booking.created"
	TopicConfirmed = "booking.confirmed"
	TopicCancelled = "booking.cancelled"
	TopicCompleted = "booking.completed"
	TopicExpired   = "booking.expired"
)

// Event is the payload published for booking lifecycle changes.
type Event struct {
	BookingID    uuid.UUID `json:"booking_id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	Status       string    `json:"status"`
	SlotDate     string    `json:"slot_date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Price        int64     `json:"price"`
	Deposit      int64     `json:"deposit"`
	RefundAmount int64     `json:"refund_amount"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func NewEvent(b *Booking, at time.Time) Event {
	return Event{
		BookingID:    b.id,
		ResourceID:   b.resourceID,
		CustomerID:   b.customerID,
		Status:       b.status.String(),
		SlotDate:     b.date.String(),
		StartTime:    b.start.String(),
		EndTime:      b.end.String(),
		Price:        b.price.Amount(),
		Deposit:      b.Deposit().Amount(),
		RefundAmount: b.refundAmount.Amount(),
		OccurredAt:   at.UTC(),
	}
}
