package request

import (
	"errors"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/promotion"
	"court-slot-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrPromotionScope = errors.New("exactly one of resource_id or venue_id is required")

type CreatePromotionRequest struct {
	ResourceID   *uuid.UUID      `json:"resource_id,omitempty"`
	VenueID      *uuid.UUID      `json:"venue_id,omitempty"`
	DiscountType string          `json:"discount_type" binding:"required,oneof=percentage fixed"`
	Value        decimal.Decimal `json:"value"`
	ValidFrom    string          `json:"valid_from" binding:"required"`
	ValidTo      string          `json:"valid_to" binding:"required"`
}

func (r CreatePromotionRequest) ToCommand() (commands.CreatePromotionRequest, error) {
	if (r.ResourceID == nil) == (r.VenueID == nil) {
		return commands.CreatePromotionRequest{}, ErrPromotionScope
	}
	from, err := calendar.ParseDate(r.ValidFrom)
	if err != nil {
		return commands.CreatePromotionRequest{}, err
	}
	to, err := calendar.ParseDate(r.ValidTo)
	if err != nil {
		return commands.CreatePromotionRequest{}, err
	}

	req := commands.CreatePromotionRequest{
		DiscountType: promotion.DiscountType(r.DiscountType),
		Value:        r.Value,
		ValidFrom:    from,
		ValidTo:      to,
	}
	if r.VenueID != nil {
		req.ScopeID = *r.VenueID
		req.VenueScoped = true
	} else {
		req.ScopeID = *r.ResourceID
	}
	return req, nil
}
