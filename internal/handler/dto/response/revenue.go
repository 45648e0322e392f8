package response

import (
	"court-slot-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type RevenueBucketResponse struct {
	Period   string `json:"period"`
	Amount   int64  `json:"amount"`
	Bookings int    `json:"bookings"`
}

type RevenueReportResponse struct {
	ResourceID    *uuid.UUID              `json:"resource_id,omitempty"`
	VenueID       *uuid.UUID              `json:"venue_id,omitempty"`
	From          string                  `json:"from"`
	To            string                  `json:"to"`
	Granularity   string                  `json:"granularity"`
	Buckets       []RevenueBucketResponse `json:"buckets"`
	TotalAmount   int64                   `json:"total_amount"`
	TotalBookings int                     `json:"total_bookings"`
}

func FromRevenueReport(r *queries.RevenueReport) (RevenueReportResponse, error) {
	resp, err := copyAs[RevenueReportResponse](r)
	if err != nil {
		return RevenueReportResponse{}, err
	}
	if resp.Buckets == nil {
		resp.Buckets = []RevenueBucketResponse{}
	}
	return resp, nil
}
