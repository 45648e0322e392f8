package queries

import (
	"context"

	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error)
	ListMine(ctx context.Context, customerID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

// GetByID is visible to the customer, the resource owner and admins.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		b, err := r.Bookings().FindByID(ctx, id)
		if err != nil {
			return readErr(err, errs.ErrBookingNotFound)
		}
		if !b.IsCustomer(actor.ID) && !actor.IsAdmin() {
			res, err := r.Resources().FindByID(ctx, b.ResourceID())
			if err != nil {
				return readErr(err, errs.ErrBookingNotFound)
			}
			if !res.IsOwnedBy(actor.ID) {
				// Hide existence from strangers.
				return errs.ErrBookingNotFound
			}
		}
		view = NewBookingView(b)
		return nil
	})
	return view, err
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, customerID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}

	var items []*BookingListItem
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		rows, err := r.BookingList().ListByCustomer(ctx, customerID, after, limit+1)
		if err != nil {
			return readErr(err, nil)
		}
		items = make([]*BookingListItem, 0, len(rows))
		for _, b := range rows {
			items = append(items, newBookingListItem(b))
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) > limit {
		last := items[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		items = items[:limit]
	}
	return items, next, nil
}
