package response

import (
	"time"

	"court-slot-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
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

func FromBookingView(v *queries.BookingView) (BookingResponse, error) {
	return copyAs[BookingResponse](v)
}

type BookingListItemResponse struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resource_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Price      int64     `json:"price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Bookings   []BookingListItemResponse `json:"bookings"`
	NextCursor string                    `json:"next_cursor,omitempty"`
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) (BookingListResponse, error) {
	resp := BookingListResponse{Bookings: make([]BookingListItemResponse, 0, len(items))}
	for _, it := range items {
		r, err := copyAs[BookingListItemResponse](it)
		if err != nil {
			return BookingListResponse{}, err
		}
		resp.Bookings = append(resp.Bookings, r)
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp, nil
}
