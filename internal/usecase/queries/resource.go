package queries

import (
	"context"
	"sort"

	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResourceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
}

type ScheduleQueries interface {
	ListByResource(ctx context.Context, resourceID uuid.UUID) ([]*ScheduleView, error)
}

type resourceQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewResourceQueries(uow shared.UnitOfWork) ResourceQueries {
	return &resourceQueriesImpl{uow: uow}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	var view *ResourceView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		res, err := r.Resources().FindByID(ctx, id)
		if err != nil {
			return readErr(err, errs.ErrResourceNotFound)
		}
		view = NewResourceView(res)
		return nil
	})
	return view, err
}

type scheduleQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewScheduleQueries(uow shared.UnitOfWork) ScheduleQueries {
	return &scheduleQueriesImpl{uow: uow}
}

// ListByResource returns the resource's definitions ordered by start time.
func (q *scheduleQueriesImpl) ListByResource(ctx context.Context, resourceID uuid.UUID) ([]*ScheduleView, error) {
	var views []*ScheduleView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		if _, err := r.Resources().FindByID(ctx, resourceID); err != nil {
			return readErr(err, errs.ErrResourceNotFound)
		}
		defs, err := r.Schedules().ListByResource(ctx, resourceID)
		if err != nil {
			return readErr(err, nil)
		}
		sort.SliceStable(defs, func(i, j int) bool {
			if defs[i].Start() != defs[j].Start() {
				return defs[i].Start() < defs[j].Start()
			}
			return defs[i].CreatedAt().Before(defs[j].CreatedAt())
		})
		views = make([]*ScheduleView, 0, len(defs))
		for _, d := range defs {
			views = append(views, NewScheduleView(d))
		}
		return nil
	})
	return views, err
}
