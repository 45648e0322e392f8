package response

import (
	"time"

	"court-slot-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ResourceResponse struct {
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

func FromResourceView(v *queries.ResourceView) (ResourceResponse, error) {
	return copyAs[ResourceResponse](v)
}

type ScheduleResponse struct {
	ID          uuid.UUID `json:"id"`
	ResourceID  uuid.UUID `json:"resource_id"`
	Weekdays    []int     `json:"weekdays"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	SlotMinutes int       `json:"slot_minutes"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromScheduleView(v *queries.ScheduleView) (ScheduleResponse, error) {
	return copyAs[ScheduleResponse](v)
}

func FromScheduleViews(vs []*queries.ScheduleView) ([]ScheduleResponse, error) {
	out := make([]ScheduleResponse, 0, len(vs))
	for _, v := range vs {
		r, err := FromScheduleView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
