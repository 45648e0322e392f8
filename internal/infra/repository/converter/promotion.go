package converter

import (
	"time"

	"court-slot-engine/internal/domain/promotion"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/pgconv"
)

func PromotionFromRow(row sqlc.Promotions) (*promotion.Promotion, error) {
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, err
	}
	return promotion.NewPromotion(
		row.ID,
		row.ScopeID,
		promotion.DiscountType(row.DiscountType),
		value,
		pgconv.DateFromPgtype(row.ValidFrom),
		pgconv.DateFromPgtype(row.ValidTo),
	)
}

func PromotionToCreateParams(p *promotion.Promotion, createdAt time.Time) sqlc.CreatePromotionParams {
	return sqlc.CreatePromotionParams{
		ID:            p.ID(),
		ScopeID:       p.ScopeID(),
		DiscountType:  p.Discount().Type().String(),
		DiscountValue: pgconv.DecimalToNumeric(p.Discount().Value()),
		ValidFrom:     pgconv.DateToPgtype(p.ValidFrom()),
		ValidTo:       pgconv.DateToPgtype(p.ValidTo()),
		CreatedAt:     pgconv.TimeToPgtype(createdAt),
	}
}
