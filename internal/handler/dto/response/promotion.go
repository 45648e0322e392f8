package response

import (
	"court-slot-engine/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromotionResponse struct {
	ID           uuid.UUID       `json:"id"`
	ScopeID      uuid.UUID       `json:"scope_id"`
	DiscountType string          `json:"discount_type"`
	Value        decimal.Decimal `json:"value"`
	ValidFrom    string          `json:"valid_from"`
	ValidTo      string          `json:"valid_to"`
}

func FromPromotion(p *promotion.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:           p.ID(),
		ScopeID:      p.ScopeID(),
		DiscountType: p.Discount().Type().String(),
		Value:        p.Discount().Value(),
		ValidFrom:    p.ValidFrom().String(),
		ValidTo:      p.ValidTo().String(),
	}
}
