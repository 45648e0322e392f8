package queries

import (
	"time"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/resource"
	"court-slot-engine/internal/domain/schedule"
	"court-slot-engine/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type ResourceView struct {
	ID                      uuid.UUID       `json:"id"`
	VenueID                 uuid.UUID       `json:"venue_id"`
	OwnerID                 uuid.UUID       `json:"owner_id"`
	Name                    string          `json:"name"`
	Timezone                string          `json:"timezone"`
	DepositPercentage       decimal.Decimal `json:"deposit_percentage"`
	CancellationWindowHours int             `json:"cancellation_window_hours"`
	RefundPercentage        decimal.Decimal `json:"refund_percentage"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

func NewResourceView(r *resource.Resource) *ResourceView {
	p := r.Policy()
	return &ResourceView{
		ID:                      r.ID(),
		VenueID:                 r.VenueID(),
		OwnerID:                 r.OwnerID(),
		Name:                    r.Name(),
		Timezone:                r.Timezone(),
		DepositPercentage:       p.DepositPercentage().Decimal(),
		CancellationWindowHours: p.CancellationWindowHours(),
		RefundPercentage:        p.RefundPercentage().Decimal(),
		CreatedAt:               r.CreatedAt(),
		UpdatedAt:               r.UpdatedAt(),
	}
}

type ScheduleView struct {
	ID          uuid.UUID `json:"id"`
	ResourceID  uuid.UUID `json:"resource_id"`
	Weekdays    []int     `json:"weekdays"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	SlotMinutes int       `json:"slot_minutes"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewScheduleView(d *schedule.Definition) *ScheduleView {
	return &ScheduleView{
		ID:          d.ID(),
		ResourceID:  d.ResourceID(),
		Weekdays:    d.Weekdays().Ints(),
		StartTime:   d.Start().String(),
		EndTime:     d.End().String(),
		SlotMinutes: d.SlotMinutes(),
		Price:       d.Price().Amount(),
		CreatedAt:   d.CreatedAt(),
	}
}

type SlotView struct {
	ResourceID uuid.UUID `json:"resource_id"`
	ScheduleID uuid.UUID `json:"schedule_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Price      int64     `json:"price"`
	Status     string    `json:"status"`
}

func NewSlotView(s slot.AvailableSlot) SlotView {
	return SlotView{
		ResourceID: s.ResourceID,
		ScheduleID: s.ScheduleID,
		Date:       s.Date.String(),
		StartTime:  s.Start.String(),
		EndTime:    s.End.String(),
		Price:      s.Price.Amount(),
		Status:     s.Status.String(),
	}
}

type PriceQuoteView struct {
	ResourceID  uuid.UUID  `json:"resource_id"`
	Date        string     `json:"date"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	Status      string     `json:"status"`
	BasePrice   int64      `json:"base_price"`
	FinalPrice  int64      `json:"final_price"`
	Deposit     int64      `json:"deposit"`
	PromotionID *uuid.UUID `json:"promotion_id,omitempty"`
}

type BookingView struct {
	ID                      uuid.UUID       `json:"id"`
	ResourceID              uuid.UUID       `json:"resource_id"`
	CustomerID              uuid.UUID       `json:"customer_id"`
	Date                    string          `json:"date"`
	StartTime               string          `json:"start_time"`
	EndTime                 string          `json:"end_time"`
	StartsAt                time.Time       `json:"starts_at"`
	EndsAt                  time.Time       `json:"ends_at"`
	BasePrice               int64           `json:"base_price"`
	Price                   int64           `json:"price"`
	Deposit                 int64           `json:"deposit"`
	PromotionID             *uuid.UUID      `json:"promotion_id,omitempty"`
	DepositPercentage       decimal.Decimal `json:"deposit_percentage"`
	CancellationWindowHours int             `json:"cancellation_window_hours"`
	RefundPercentage        decimal.Decimal `json:"refund_percentage"`
	Status                  string          `json:"status"`
	RefundAmount            int64           `json:"refund_amount"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
	ConfirmedAt             *time.Time      `json:"confirmed_at,omitempty"`
	CancelledAt             *time.Time      `json:"cancelled_at,omitempty"`
	CompletedAt             *time.Time      `json:"completed_at,omitempty"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	p := b.Policy()
	return &BookingView{
		ID:                      b.ID(),
		ResourceID:              b.ResourceID(),
		CustomerID:              b.CustomerID(),
		Date:                    b.Date().String(),
		StartTime:               b.Start().String(),
		EndTime:                 b.End().String(),
		StartsAt:                b.StartsAt(),
		EndsAt:                  b.EndsAt(),
		BasePrice:               b.BasePrice().Amount(),
		Price:                   b.Price().Amount(),
		Deposit:                 b.Deposit().Amount(),
		PromotionID:             b.PromotionID(),
		DepositPercentage:       p.DepositPercentage().Decimal(),
		CancellationWindowHours: p.CancellationWindowHours(),
		RefundPercentage:        p.RefundPercentage().Decimal(),
		Status:                  b.Status().String(),
		RefundAmount:            b.RefundAmount().Amount(),
		CreatedAt:               b.CreatedAt(),
		UpdatedAt:               b.UpdatedAt(),
		ConfirmedAt:             b.ConfirmedAt(),
		CancelledAt:             b.CancelledAt(),
		CompletedAt:             b.CompletedAt(),
	}
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resource_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Price      int64     `json:"price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func newBookingListItem(b *booking.Booking) *BookingListItem {
	return &BookingListItem{
		ID:         b.ID(),
		ResourceID: b.ResourceID(),
		Date:       b.Date().String(),
		StartTime:  b.Start().String(),
		EndTime:    b.End().String(),
		Price:      b.Price().Amount(),
		Status:     b.Status().String(),
		CreatedAt:  b.CreatedAt(),
	}
}

type RevenueBucketView struct {
	Period   string `json:"period"`
	Amount   int64  `json:"amount"`
	Bookings int    `json:"bookings"`
}

type RevenueReport struct {
	ResourceID    *uuid.UUID          `json:"resource_id,omitempty"`
	VenueID       *uuid.UUID          `json:"venue_id,omitempty"`
	From          string              `json:"from"`
	To            string              `json:"to"`
	Granularity   string              `json:"granularity"`
	Buckets       []RevenueBucketView `json:"buckets"`
	TotalAmount   int64               `json:"total_amount"`
	TotalBookings int                 `json:"total_bookings"`
}
