package queries

import (
	"context"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/revenue"
	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// RevenueFilter scopes a report to exactly one of a resource or a venue.
type RevenueFilter struct {
	ResourceID  *uuid.UUID
	VenueID     *uuid.UUID
	From        calendar.Date
	To          calendar.Date
	Granularity revenue.Granularity
}

type RevenueQueries interface {
	Report(ctx context.Context, f RevenueFilter, actor user.Actor) (*RevenueReport, error)
}

type revenueQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRevenueQueries(uow shared.UnitOfWork) RevenueQueries {
	return &revenueQueriesImpl{uow: uow}
}

// Report buckets completed bookings by slot date. Resource reports are for the owner or an
// admin; venue reports span owners and are admin only.
func (q *revenueQueriesImpl) Report(ctx context.Context, f RevenueFilter, actor user.Actor) (*RevenueReport, error) {
	if (f.ResourceID == nil) == (f.VenueID == nil) {
		return nil, errs.Mark(errs.New("exactly one of resource or venue is required"), errs.ErrDomainValidation)
	}
	if f.To.Before(f.From) {
		return nil, errs.ErrInvalidRange
	}
	if !f.Granularity.IsValid() {
		return nil, errs.Mark(errs.New("invalid granularity"), errs.ErrDomainValidation)
	}
	if f.VenueID != nil && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	var stats []revenue.PeriodStat
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		if f.ResourceID != nil {
			res, err := r.Resources().FindByID(ctx, *f.ResourceID)
			if err != nil {
				return readErr(err, errs.ErrResourceNotFound)
			}
			if !actor.CanManage(res.OwnerID()) {
				return errs.ErrForbidden
			}
		}

		var err error
		stats, err = r.Revenue().PeriodStats(ctx, shared.RevenueFilter{
			ResourceID:  f.ResourceID,
			VenueID:     f.VenueID,
			From:        f.From,
			To:          f.To,
			Granularity: f.Granularity,
		})
		if err != nil {
			return readErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	buckets := revenue.Aggregate(stats, f.From, f.To, f.Granularity)
	total, count := revenue.Total(buckets)

	report := &RevenueReport{
		ResourceID:    f.ResourceID,
		VenueID:       f.VenueID,
		From:          f.From.String(),
		To:            f.To.String(),
		Granularity:   f.Granularity.String(),
		Buckets:       make([]RevenueBucketView, len(buckets)),
		TotalAmount:   total.Amount(),
		TotalBookings: count,
	}
	for i, b := range buckets {
		report.Buckets[i] = RevenueBucketView{Period: b.Key, Amount: b.Amount.Amount(), Bookings: b.Count}
	}
	return report, nil
}
