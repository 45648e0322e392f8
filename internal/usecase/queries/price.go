package queries

import (
	"context"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/promotion"
	"court-slot-engine/internal/domain/slot"
	"court-slot-engine/internal/pkg/clock"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type PriceQueries interface {
	// Quote resolves the price a booking of this slot would be charged now.
	Quote(ctx context.Context, resourceID uuid.UUID, date calendar.Date, start calendar.TimeOfDay) (*PriceQuoteView, error)
}

type priceQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPriceQueries(uow shared.UnitOfWork, clk clock.Clock) PriceQueries {
	return &priceQueriesImpl{uow: uow, clock: clk}
}

func (q *priceQueriesImpl) Quote(ctx context.Context, resourceID uuid.UUID, date calendar.Date, start calendar.TimeOfDay) (*PriceQuoteView, error) {
	key := slot.NewKey(resourceID, date, start)

	var view *PriceQuoteView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		res, err := r.Resources().FindByID(ctx, resourceID)
		if err != nil {
			return readErr(err, errs.ErrResourceNotFound)
		}
		now := q.clock.Now().In(res.Location())

		defs, err := r.Schedules().ListByResource(ctx, resourceID)
		if err != nil {
			return readErr(err, nil)
		}
		index, err := r.SlotStates().ListRange(ctx, resourceID, date, date)
		if err != nil {
			return readErr(err, nil)
		}
		target, ok := slot.Lookup(defs, index, key, calendar.DateOf(now))
		if !ok {
			return errs.ErrSlotNotFound
		}

		promos, err := r.Promotions().ListByScopes(ctx, res.Scopes())
		if err != nil {
			return readErr(err, nil)
		}
		quote := promotion.Resolve(target.Price, res.Scopes(), promos, now)

		view = &PriceQuoteView{
			ResourceID:  resourceID,
			Date:        date.String(),
			StartTime:   target.Start.String(),
			EndTime:     target.End.String(),
			Status:      target.Status.String(),
			BasePrice:   quote.Base.Amount(),
			FinalPrice:  quote.Final.Amount(),
			Deposit:     quote.Final.Percent(res.Policy().DepositPercentage()).Amount(),
			PromotionID: quote.PromotionID,
		}
		return nil
	})
	return view, err
}

