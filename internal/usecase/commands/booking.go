package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"
	"court-slot-engine/internal/domain/promotion"
	"court-slot-engine/internal/domain/slot"
	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/infra"
	"court-slot-engine/internal/pkg/clock"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	OutcomeCreated     = "created"
	OutcomeUnavailable = "unavailable"
	OutcomeFailed      = "failed"
)

type BookRequest struct {
	ResourceID uuid.UUID
	Date       calendar.Date
	Start      calendar.TimeOfDay
}

type BookingCommands interface {
	Book(ctx context.Context, req BookRequest, customerID uuid.UUID) (*booking.Booking, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*booking.Booking, error)
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID, paid money.Money) (*booking.Booking, error)
	CompleteFinished(ctx context.Context, limit int) (int, error)
	ExpireStalePending(ctx context.Context, ttl time.Duration, limit int) (int, error)
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics Metrics
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, m Metrics) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, metrics: orNoop(m)}
}

// Book claims the slot and inserts a pending booking in one unit of work. The slot claim is
// unique per key, so of several concurrent attempts exactly one commits.
func (uc *bookingUseCaseImpl) Book(ctx context.Context, req BookRequest, customerID uuid.UUID) (*booking.Booking, error) {
	now := uc.clock.Now()
	key := slot.NewKey(req.ResourceID, req.Date, req.Start)

	var created *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Resources().FindByID(ctx, req.ResourceID)
		if err != nil {
			return repoErr(err, errs.ErrResourceNotFound)
		}
		loc := res.Location()

		target, err := lookupSlot(ctx, tx, key, calendar.DateOf(now.In(loc)))
		if err != nil {
			return err
		}

		promos, err := tx.Promotions().ListByScopes(ctx, res.Scopes())
		if err != nil {
			return repoErr(err, nil)
		}
		quote := promotion.Resolve(target.Price, res.Scopes(), promos, now.In(loc))

		b, err := booking.Book(target, customerID, now, booking.Terms{
			Location:    loc,
			Policy:      res.Policy(),
			BasePrice:   quote.Base,
			Price:       quote.Final,
			PromotionID: quote.PromotionID,
		})
		if err != nil {
			return err
		}

		if err := tx.SlotStates().Claim(ctx, key, b.ID()); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, booking.ErrSlotUnavailable)
			}
			return repoErr(err, nil)
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return repoErr(err, nil)
		}
		if err := shared.EnqueueEvent(ctx, tx, booking.TopicCreated, booking.NewEvent(b, now), now); err != nil {
			return repoErr(err, nil)
		}

		created = b
		return nil
	})
	if err != nil {
		if errors.Is(err, booking.ErrSlotUnavailable) {
			uc.metrics.BookingOutcome(OutcomeUnavailable)
		} else {
			uc.metrics.BookingOutcome(OutcomeFailed)
		}
		return nil, err
	}

	uc.metrics.BookingOutcome(OutcomeCreated)
	slog.InfoContext(ctx, "booking created",
		"booking_id", created.ID(),
		"slot", key.String(),
		"customer_id", customerID,
		"price", created.Price().Amount())
	return created, nil
}

// Cancel is allowed for the customer, the resource owner and admins.
func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*booking.Booking, error) {
	now := uc.clock.Now()

	var cancelled *booking.Booking
	var refund money.Money
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, bookingID)
		if err != nil {
			return repoErr(err, errs.ErrBookingNotFound)
		}
		if !b.IsCustomer(actor.ID) && !actor.IsAdmin() {
			res, err := tx.Resources().FindByID(ctx, b.ResourceID())
			if err != nil {
				return repoErr(err, errs.ErrResourceNotFound)
			}
			if !res.IsOwnedBy(actor.ID) {
				return errs.ErrForbidden
			}
		}

		if refund, err = b.Cancel(now); err != nil {
			return err
		}
		if err := uc.finish(ctx, tx, b, booking.TopicCancelled, now, true); err != nil {
			return err
		}
		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.Cancellation(!refund.IsZero())
	slog.InfoContext(ctx, "booking cancelled",
		"booking_id", bookingID,
		"actor_id", actor.ID,
		"refund", refund.Amount())
	return cancelled, nil
}

// ConfirmPayment confirms a pending booking paid at least its deposit. Repeating it for an
// already confirmed booking is a no-op so redelivered payment events are harmless.
func (uc *bookingUseCaseImpl) ConfirmPayment(ctx context.Context, bookingID uuid.UUID, paid money.Money) (*booking.Booking, error) {
	now := uc.clock.Now()

	var confirmed *booking.Booking
	replayed := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, bookingID)
		if err != nil {
			return repoErr(err, errs.ErrBookingNotFound)
		}
		confirmed = b
		if b.Status() == booking.StatusConfirmed {
			replayed = true
			return nil
		}

		if err := b.ConfirmPayment(paid, now); err != nil {
			return err
		}
		return uc.finish(ctx, tx, b, booking.TopicConfirmed, now, false)
	})
	if err != nil {
		return nil, err
	}

	if !replayed {
		slog.InfoContext(ctx, "booking confirmed", "booking_id", bookingID, "paid", paid.Amount())
	}
	return confirmed, nil
}

// CompleteFinished completes up to limit confirmed bookings whose slot has ended.
func (uc *bookingUseCaseImpl) CompleteFinished(ctx context.Context, limit int) (int, error) {
	now := uc.clock.Now()

	n := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n = 0
		due, err := tx.Bookings().ListConfirmedEndedBefore(ctx, now, limit)
		if err != nil {
			return repoErr(err, nil)
		}
		for _, b := range due {
			if err := b.Complete(now); err != nil {
				slog.WarnContext(ctx, "skipping booking that cannot complete", "booking_id", b.ID(), "error", err)
				continue
			}
			if err := uc.finish(ctx, tx, b, booking.TopicCompleted, now, false); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ExpireStalePending cancels pending bookings created more than ttl ago and frees their slots.
func (uc *bookingUseCaseImpl) ExpireStalePending(ctx context.Context, ttl time.Duration, limit int) (int, error) {
	now := uc.clock.Now()

	n := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n = 0
		stale, err := tx.Bookings().ListPendingCreatedBefore(ctx, now.Add(-ttl), limit)
		if err != nil {
			return repoErr(err, nil)
		}
		for _, b := range stale {
			if err := b.Expire(now); err != nil {
				continue
			}
			if err := uc.finish(ctx, tx, b, booking.TopicExpired, now, true); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// finish persists a transition, optionally releasing the slot, and enqueues its event.
func (uc *bookingUseCaseImpl) finish(ctx context.Context, tx shared.Tx, b *booking.Booking, topic string, now time.Time, release bool) error {
	if release {
		err := tx.SlotStates().Release(ctx, b.SlotKey(), b.ID())
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return repoErr(err, nil)
		}
	}
	if err := tx.Bookings().Update(ctx, b); err != nil {
		return repoErr(err, errs.ErrBookingNotFound)
	}
	if err := shared.EnqueueEvent(ctx, tx, topic, booking.NewEvent(b, now), now); err != nil {
		return repoErr(err, nil)
	}
	return nil
}
