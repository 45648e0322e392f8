package shared

import (
	"context"
	"time"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/promotion"
	"court-slot-engine/internal/domain/resource"
	"court-slot-engine/internal/domain/revenue"
	"court-slot-engine/internal/domain/schedule"
	"court-slot-engine/internal/domain/slot"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, r Reads) error) error
}

type Tx interface {
	Resources() ResourceRepository
	Schedules() ScheduleRepository
	SlotStates() SlotStateRepository
	Bookings() BookingRepository
	Promotions() PromotionRepository
	Outbox() OutboxRepository
}

type Reads interface {
	Resources() ResourceReader
	Schedules() ScheduleReader
	SlotStates() SlotStateReader
	Promotions() PromotionReader
	Bookings() BookingReader
	BookingList() BookingListReader
	Revenue() RevenueReader
}

type ResourceReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
}

type ResourceRepository interface {
	ResourceReader
	// Lock loads the resource holding its row lock until the transaction ends.
	Lock(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	Create(ctx context.Context, r *resource.Resource) error
	UpdatePolicy(ctx context.Context, r *resource.Resource) error
}

type ScheduleReader interface {
	ListByResource(ctx context.Context, resourceID uuid.UUID) ([]*schedule.Definition, error)
}

type ScheduleRepository interface {
	ScheduleReader
	Create(ctx context.Context, d *schedule.Definition) error
	Delete(ctx context.Context, resourceID, id uuid.UUID) error
}

type SlotStateReader interface {
	// ListRange returns the marks of a resource for dates in [from, to].
	ListRange(ctx context.Context, resourceID uuid.UUID, from, to calendar.Date) (slot.BookedIndex, error)
	Get(ctx context.Context, key slot.Key) (slot.Status, bool, error)
}

type SlotStateRepository interface {
	SlotStateReader
	// Claim marks key as booked. A second claim fails with a DUPLICATE_KEY repository error.
	Claim(ctx context.Context, key slot.Key, bookingID uuid.UUID) error
	Release(ctx context.Context, key slot.Key, bookingID uuid.UUID) error
	SetMaintenance(ctx context.Context, key slot.Key, enabled bool) error
}

type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type BookingRepository interface {
	BookingReader
	Create(ctx context.Context, b *booking.Booking) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	ListConfirmedEndedBefore(ctx context.Context, t time.Time, limit int) ([]*booking.Booking, error)
	ListPendingCreatedBefore(ctx context.Context, t time.Time, limit int) ([]*booking.Booking, error)
}

type PromotionReader interface {
	ListByScopes(ctx context.Context, scopeIDs []uuid.UUID) ([]*promotion.Promotion, error)
}

type PromotionRepository interface {
	PromotionReader
	Create(ctx context.Context, p *promotion.Promotion) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, topic string, payload []byte, runAt time.Time) error
	// ClaimDue returns up to limit queued events with run_at <= now and bumps their attempts.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string, nextRunAt time.Time, dead bool) error
}

type BookingListReader interface {
	// ListByCustomer pages newest first. A nil after starts from the top.
	ListByCustomer(ctx context.Context, customerID uuid.UUID, after *KeysetCursor, limit int) ([]*booking.Booking, error)
}

type RevenueReader interface {
	PeriodStats(ctx context.Context, f RevenueFilter) ([]revenue.PeriodStat, error)
}
