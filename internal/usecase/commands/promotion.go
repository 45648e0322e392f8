package commands

import (
	"context"
	"log/slog"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/promotion"
	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePromotionRequest scopes the promotion to a resource, or to a venue when VenueScoped is set.
type CreatePromotionRequest struct {
	ScopeID      uuid.UUID
	VenueScoped  bool
	DiscountType promotion.DiscountType
	Value        decimal.Decimal
	ValidFrom    calendar.Date
	ValidTo      calendar.Date
}

type PromotionCommands interface {
	Create(ctx context.Context, req CreatePromotionRequest, actor user.Actor) (*promotion.Promotion, error)
}

type promotionUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPromotionUseCase(uow shared.UnitOfWork) PromotionCommands {
	return &promotionUseCaseImpl{uow: uow}
}

// Create lets the resource owner promote one resource. Venue-wide promotions need an admin.
func (uc *promotionUseCaseImpl) Create(ctx context.Context, req CreatePromotionRequest, actor user.Actor) (*promotion.Promotion, error) {
	if req.VenueScoped && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	p, err := promotion.NewPromotion(uuid.Nil, req.ScopeID, req.DiscountType, req.Value, req.ValidFrom, req.ValidTo)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if !req.VenueScoped {
			if _, err := lockManagedResource(ctx, tx, req.ScopeID, actor); err != nil {
				return err
			}
		}
		if err := tx.Promotions().Create(ctx, p); err != nil {
			return repoErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "promotion created",
		"promotion_id", p.ID(),
		"scope_id", p.ScopeID(),
		"type", p.Discount().Type().String())
	return p, nil
}
