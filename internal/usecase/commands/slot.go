package commands

import (
	"context"
	"log/slog"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/slot"
	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/infra"
	"court-slot-engine/internal/pkg/clock"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type MaintenanceRequest struct {
	ResourceID uuid.UUID
	Date       calendar.Date
	Start      calendar.TimeOfDay
	Enabled    bool
}

type SlotCommands interface {
	SetMaintenance(ctx context.Context, req MaintenanceRequest, actor user.Actor) error
}

type slotUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSlotUseCase(uow shared.UnitOfWork, clk clock.Clock) SlotCommands {
	return &slotUseCaseImpl{uow: uow, clock: clk}
}

// SetMaintenance marks or clears maintenance on a scheduled, unbooked slot that has not passed.
func (uc *slotUseCaseImpl) SetMaintenance(ctx context.Context, req MaintenanceRequest, actor user.Actor) error {
	key := slot.NewKey(req.ResourceID, req.Date, req.Start)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockManagedResource(ctx, tx, req.ResourceID, actor)
		if err != nil {
			return err
		}

		current, err := lookupSlot(ctx, tx, key, calendar.DateOf(uc.clock.Now().In(res.Location())))
		if err != nil {
			return err
		}

		switch current.Status {
		case slot.StatusBooked, slot.StatusPast:
			return booking.ErrSlotUnavailable
		case slot.StatusMaintenance:
			if req.Enabled {
				return nil
			}
		case slot.StatusAvailable:
			if !req.Enabled {
				return nil
			}
		}

		if err := tx.SlotStates().SetMaintenance(ctx, key, req.Enabled); err != nil {
			// A booking claimed the slot after lookupSlot read it.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, booking.ErrSlotUnavailable)
			}
			return repoErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "slot maintenance changed", "slot", key.String(), "enabled", req.Enabled)
	return nil
}

// lookupSlot materializes the single slot addressed by key against the current schedules and marks.
func lookupSlot(ctx context.Context, tx shared.Tx, key slot.Key, today calendar.Date) (slot.AvailableSlot, error) {
	defs, err := tx.Schedules().ListByResource(ctx, key.ResourceID)
	if err != nil {
		return slot.AvailableSlot{}, repoErr(err, nil)
	}

	index := make(slot.BookedIndex, 1)
	status, marked, err := tx.SlotStates().Get(ctx, key)
	if err != nil {
		return slot.AvailableSlot{}, repoErr(err, nil)
	}
	if marked {
		if err := index.Mark(key, status); err != nil {
			return slot.AvailableSlot{}, err
		}
	}

	found, ok := slot.Lookup(defs, index, key, today)
	if !ok {
		return slot.AvailableSlot{}, errs.ErrSlotNotFound
	}
	return found, nil
}
