package shared

import (
	"time"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/revenue"

	"github.com/google/uuid"
)

type OutboxEvent struct {
	ID       uuid.UUID
	Topic    string
	Payload  []byte
	Attempts int
}

type KeysetCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// RevenueFilter selects completed bookings by resource or by venue, with slot dates in [From, To].
type RevenueFilter struct {
	ResourceID  *uuid.UUID
	VenueID     *uuid.UUID
	From        calendar.Date
	To          calendar.Date
	Granularity revenue.Granularity
}
