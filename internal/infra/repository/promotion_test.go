//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/promotion"
	"court-slot-engine/internal/infra"
	"court-slot-engine/internal/infra/repository"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/clock"
	"court-slot-engine/internal/pkg/pgconv"
	repositorymock "court-slot-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func promotionRow(scopeID uuid.UUID, kind string, value string) sqlc.Promotions {
	return sqlc.Promotions{
		ID:            uuid.New(),
		ScopeID:       scopeID,
		DiscountType:  kind,
		DiscountValue: pgconv.DecimalToNumeric(decimal.RequireFromString(value)),
		ValidFrom:     pgconv.DateToPgtype(calendar.NewDate(2025, time.June, 1)),
		ValidTo:       pgconv.DateToPgtype(calendar.NewDate(2025, time.June, 30)),
		CreatedAt:     pgconv.TimeToPgtype(slotNow),
	}
}

func TestPromotionRepository_ListByScopes(t *testing.T) {
	ctx := context.Background()
	resourceID, venueID := uuid.New(), uuid.New()

	testCases := []struct {
		name          string
		rows          []sqlc.Promotions
		dbErr         error
		expectedCount int
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: resource and venue promotions",
			rows: []sqlc.Promotions{
				promotionRow(resourceID, "percentage", "10"),
				promotionRow(venueID, "fixed", "5000"),
			},
			expectedCount: 2,
		},
		{
			name:       "error: unknown discount type stored",
			rows:       []sqlc.Promotions{promotionRow(resourceID, "bogo", "1")},
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: database error occurs",
			dbErr:      errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPromotionWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPromotionRepository(mockQueries, mockDB, clock.NewMockClock(slotNow))

			scopes := []uuid.UUID{resourceID, venueID}
			mockQueries.EXPECT().ListPromotionsByScopes(ctx, mockDB, scopes).Return(tc.rows, tc.dbErr)

			promos, err := repo.ListByScopes(ctx, scopes)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Len(t, promos, tc.expectedCount)
		})
	}

	t.Run("no scopes skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewPromotionRepository(repositorymock.NewMockPromotionWriteQueries(ctrl), &mockDBTX{}, clock.NewMockClock(slotNow))

		promos, err := repo.ListByScopes(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, promos)
	})
}

func TestPromotionRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockPromotionWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewPromotionRepository(mockQueries, mockDB, clock.NewMockClock(slotNow))

	p, err := promotion.NewPromotion(uuid.New(), uuid.New(), promotion.DiscountPercentage,
		decimal.NewFromInt(15), calendar.NewDate(2025, time.June, 1), calendar.NewDate(2025, time.June, 30))
	require.NoError(t, err)

	mockQueries.EXPECT().CreatePromotion(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreatePromotionParams) error {
			assert.Equal(t, p.ID(), arg.ID)
			assert.Equal(t, "percentage", arg.DiscountType)
			assert.Equal(t, slotNow, arg.CreatedAt.Time)
			return nil
		})

	require.NoError(t, repo.Create(ctx, p))
}
