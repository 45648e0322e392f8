package repository

import (
	"context"

	"court-slot-engine/internal/domain/promotion"
	"court-slot-engine/internal/infra"
	"court-slot-engine/internal/infra/repository/converter"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

type PromotionWriteQueries interface {
	ListPromotionsByScopes(ctx context.Context, db sqlc.DBTX, scopeIds []uuid.UUID) ([]sqlc.Promotions, error)
	CreatePromotion(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePromotionParams) error
}

type PromotionRepository struct {
	queries PromotionWriteQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

func NewPromotionRepository(queries PromotionWriteQueries, db sqlc.DBTX, clk clock.Clock) *PromotionRepository {
	return &PromotionRepository{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (r *PromotionRepository) ListByScopes(ctx context.Context, scopeIDs []uuid.UUID) ([]*promotion.Promotion, error) {
	if len(scopeIDs) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListPromotionsByScopes(ctx, r.db, scopeIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions", err)
	}

	promos := make([]*promotion.Promotion, 0, len(rows))
	for _, row := range rows {
		p, err := converter.PromotionFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode promotion", err)
		}
		promos = append(promos, p)
	}
	return promos, nil
}

func (r *PromotionRepository) Create(ctx context.Context, p *promotion.Promotion) error {
	if err := r.queries.CreatePromotion(ctx, r.db, converter.PromotionToCreateParams(p, r.clock.Now())); err != nil {
		return infra.WrapRepoErr("failed to create promotion", err)
	}
	return nil
}
