package commands

import (
	"context"
	"log/slog"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/schedule"
	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/pkg/clock"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddScheduleRequest struct {
	ResourceID  uuid.UUID
	Weekdays    []int
	Start       calendar.TimeOfDay
	End         calendar.TimeOfDay
	SlotMinutes int
	Price       int64
}

type ScheduleCommands interface {
	AddSchedule(ctx context.Context, req AddScheduleRequest, actor user.Actor) (*schedule.Definition, error)
	RemoveSchedule(ctx context.Context, resourceID, scheduleID uuid.UUID, actor user.Actor) error
}

type scheduleUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewScheduleUseCase(uow shared.UnitOfWork, clk clock.Clock) ScheduleCommands {
	return &scheduleUseCaseImpl{uow: uow, clock: clk}
}

// AddSchedule validates the candidate against the resource's rules while holding the resource lock,
// so two concurrent calls can never both pass the overlap check.
func (uc *scheduleUseCaseImpl) AddSchedule(ctx context.Context, req AddScheduleRequest, actor user.Actor) (*schedule.Definition, error) {
	candidate, err := schedule.NewDefinition(schedule.Params{
		ResourceID:  req.ResourceID,
		Weekdays:    req.Weekdays,
		Start:       req.Start,
		End:         req.End,
		SlotMinutes: req.SlotMinutes,
		Price:       req.Price,
	}, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockManagedResource(ctx, tx, req.ResourceID, actor); err != nil {
			return err
		}

		existing, err := tx.Schedules().ListByResource(ctx, req.ResourceID)
		if err != nil {
			return repoErr(err, nil)
		}
		if _, err := schedule.AddSchedule(existing, candidate); err != nil {
			return err
		}

		if err := tx.Schedules().Create(ctx, candidate); err != nil {
			return repoErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "schedule added",
		"resource_id", req.ResourceID,
		"schedule_id", candidate.ID(),
		"weekdays", candidate.Weekdays().String(),
		"window", candidate.Start().String()+"-"+candidate.End().String())
	return candidate, nil
}

func (uc *scheduleUseCaseImpl) RemoveSchedule(ctx context.Context, resourceID, scheduleID uuid.UUID, actor user.Actor) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockManagedResource(ctx, tx, resourceID, actor); err != nil {
			return err
		}
		if err := tx.Schedules().Delete(ctx, resourceID, scheduleID); err != nil {
			return repoErr(err, errs.ErrScheduleNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "schedule removed", "resource_id", resourceID, "schedule_id", scheduleID)
	return nil
}
