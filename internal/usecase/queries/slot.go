package queries

import (
	"context"
	"fmt"
	"slices"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/slot"
	"court-slot-engine/internal/pkg/clock"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const DefaultMaxRangeDays = 93

type SlotQueries interface {
	// ListSlots materializes [from, to] in the resource's zone.
	ListSlots(ctx context.Context, resourceID uuid.UUID, from, to calendar.Date) ([]SlotView, error)
}

type slotQueriesImpl struct {
	uow          shared.UnitOfWork
	clock        clock.Clock
	metrics      Metrics
	maxRangeDays int
	group        singleflight.Group
}

func NewSlotQueries(uow shared.UnitOfWork, clk clock.Clock, m Metrics, maxRangeDays int) SlotQueries {
	if maxRangeDays <= 0 {
		maxRangeDays = DefaultMaxRangeDays
	}
	return &slotQueriesImpl{uow: uow, clock: clk, metrics: orNoop(m), maxRangeDays: maxRangeDays}
}

func (q *slotQueriesImpl) ListSlots(ctx context.Context, resourceID uuid.UUID, from, to calendar.Date) ([]SlotView, error) {
	if to.Before(from) {
		return nil, errs.ErrInvalidRange
	}
	if calendar.DaysBetween(from, to)+1 > q.maxRangeDays {
		return nil, errs.Mark(fmt.Errorf("range exceeds %d days", q.maxRangeDays), errs.ErrInvalidRange)
	}

	key := fmt.Sprintf("%s|%s|%s", resourceID, from, to)
	// The shared read outlives any single caller; each caller still honours its own ctx.
	ch := q.group.DoChan(key, func() (any, error) {
		return q.materialize(context.WithoutCancel(ctx), resourceID, from, to)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]SlotView)), nil
	}
}

func (q *slotQueriesImpl) materialize(ctx context.Context, resourceID uuid.UUID, from, to calendar.Date) ([]SlotView, error) {
	var views []SlotView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		res, err := r.Resources().FindByID(ctx, resourceID)
		if err != nil {
			return readErr(err, errs.ErrResourceNotFound)
		}
		defs, err := r.Schedules().ListByResource(ctx, resourceID)
		if err != nil {
			return readErr(err, nil)
		}
		index, err := r.SlotStates().ListRange(ctx, resourceID, from, to)
		if err != nil {
			return readErr(err, nil)
		}

		today := calendar.DateOf(q.clock.Now().In(res.Location()))
		slots := slot.Materialize(defs, index, from, to, today)
		views = make([]SlotView, len(slots))
		for i, s := range slots {
			views[i] = NewSlotView(s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	q.metrics.SlotsMaterialized(len(views))
	return views, nil
}
