package request

import (
	"court-slot-engine/internal/domain/revenue"
	"court-slot-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

// RevenueQuery mirrors the query string of the revenue report.
type RevenueQuery struct {
	ResourceID  string `form:"resource_id"`
	VenueID     string `form:"venue_id"`
	From        string `form:"from" binding:"required"`
	To          string `form:"to" binding:"required"`
	Granularity string `form:"granularity"`
}

// ToFilter defaults granularity to month. Scope checks are left to the query.
func (q RevenueQuery) ToFilter() (queries.RevenueFilter, error) {
	rng, err := ParseDateRange(q.From, q.To)
	if err != nil {
		return queries.RevenueFilter{}, err
	}
	f := queries.RevenueFilter{From: rng.From, To: rng.To, Granularity: revenue.Month}
	if q.Granularity != "" {
		g, err := revenue.ParseGranularity(q.Granularity)
		if err != nil {
			return queries.RevenueFilter{}, err
		}
		f.Granularity = g
	}
	if q.ResourceID != "" {
		id, err := uuid.Parse(q.ResourceID)
		if err != nil {
			return queries.RevenueFilter{}, err
		}
		f.ResourceID = &id
	}
	if q.VenueID != "" {
		id, err := uuid.Parse(q.VenueID)
		if err != nil {
			return queries.RevenueFilter{}, err
		}
		f.VenueID = &id
	}
	return f, nil
}
