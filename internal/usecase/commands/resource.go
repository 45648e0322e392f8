package commands

import (
	"context"
	"log/slog"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/resource"
	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/infra"
	"court-slot-engine/internal/pkg/clock"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/pkg/patch"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrDuplicateResource = errs.New("resource already exists")

type CreateResourceRequest struct {
	VenueID  uuid.UUID
	Name     string
	Timezone string
	Policy   PolicyPatch
}

// PolicyPatch carries optional policy fields. Nil keeps the current (or default) value.
type PolicyPatch struct {
	DepositPercentage       *decimal.Decimal
	CancellationWindowHours *int
	RefundPercentage        *decimal.Decimal
}

func (p PolicyPatch) applyTo(cur booking.Policy) (booking.Policy, error) {
	return booking.NewPolicy(
		patch.Coalesce(p.DepositPercentage, cur.DepositPercentage().Decimal()),
		patch.Coalesce(p.CancellationWindowHours, cur.CancellationWindowHours()),
		patch.Coalesce(p.RefundPercentage, cur.RefundPercentage().Decimal()),
	)
}

type ResourceCommands interface {
	Create(ctx context.Context, req CreateResourceRequest, actor user.Actor) (*resource.Resource, error)
	UpdatePolicy(ctx context.Context, resourceID uuid.UUID, p PolicyPatch, actor user.Actor) (*resource.Resource, error)
}

type resourceUseCaseImpl struct {
	uow             shared.UnitOfWork
	clock           clock.Clock
	defaultTimezone string
}

func NewResourceUseCase(uow shared.UnitOfWork, clk clock.Clock, defaultTimezone string) ResourceCommands {
	return &resourceUseCaseImpl{uow: uow, clock: clk, defaultTimezone: defaultTimezone}
}

// Create registers a resource owned by actor. Admins create resources on their own account too.
func (uc *resourceUseCaseImpl) Create(ctx context.Context, req CreateResourceRequest, actor user.Actor) (*resource.Resource, error) {
	if actor.Role != user.RoleOwner && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	policy, err := req.Policy.applyTo(booking.DefaultPolicy())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	tz := req.Timezone
	if tz == "" {
		tz = uc.defaultTimezone
	}
	res, err := resource.NewResource(uuid.Nil, req.VenueID, actor.ID, req.Name, tz, policy, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Resources().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateResource)
			}
			return repoErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "resource created", "resource_id", res.ID(), "venue_id", res.VenueID(), "owner_id", actor.ID)
	return res, nil
}

func (uc *resourceUseCaseImpl) UpdatePolicy(ctx context.Context, resourceID uuid.UUID, p PolicyPatch, actor user.Actor) (*resource.Resource, error) {
	var updated *resource.Resource
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := lockManagedResource(ctx, tx, resourceID, actor)
		if err != nil {
			return err
		}
		policy, err := p.applyTo(res.Policy())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		res.ChangePolicy(policy, uc.clock.Now())
		if err := tx.Resources().UpdatePolicy(ctx, res); err != nil {
			return repoErr(err, errs.ErrResourceNotFound)
		}
		updated = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "resource policy updated", "resource_id", resourceID)
	return updated, nil
}
