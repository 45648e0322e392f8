package response

import (
	"court-slot-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ScheduleID uuid.UUID `json:"schedule_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Price      int64     `json:"price"`
	Status     string    `json:"status"`
}

type SlotListResponse struct {
	ResourceID uuid.UUID      `json:"resource_id"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Slots      []SlotResponse `json:"slots"`
}

func FromSlotViews(resourceID uuid.UUID, from, to string, vs []queries.SlotView) (SlotListResponse, error) {
	slots := make([]SlotResponse, 0, len(vs))
	if err := copier.Copy(&slots, vs); err != nil {
		return SlotListResponse{}, err
	}
	return SlotListResponse{ResourceID: resourceID, From: from, To: to, Slots: slots}, nil
}

type PriceQuoteResponse struct {
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

func FromPriceQuoteView(v *queries.PriceQuoteView) (PriceQuoteResponse, error) {
	return copyAs[PriceQuoteResponse](v)
}
