//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"court-slot-engine/internal/infra"
	"court-slot-engine/internal/infra/repository"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/tests/common/builder"
	repositorymock "court-slot-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduleRepository_ListByResource(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	testCases := []struct {
		name          string
		rows          []sqlc.ScheduleDefinitions
		dbErr         error
		expectedCount int
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rows decoded",
			rows: []sqlc.ScheduleDefinitions{
				builder.NewScheduleBuilder().WithResourceID(resourceID).BuildInfra(),
				builder.NewScheduleBuilder().WithResourceID(resourceID).WithWeekdays(6, 7).BuildInfra(),
			},
			expectedCount: 2,
		},
		{
			name:          "success: no schedules",
			expectedCount: 0,
		},
		{
			name: "error: invalid weekday stored",
			rows: []sqlc.ScheduleDefinitions{
				builder.NewScheduleBuilder().WithResourceID(resourceID).With(func(b *builder.ScheduleBuilder) { b.Weekdays = []int{9} }).BuildInfra(),
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name:          "error: database error occurs",
			dbErr:         errors.New("database connection error"),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockScheduleWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewScheduleRepository(mockQueries, mockDB)

			mockQueries.EXPECT().ListSchedulesByResource(ctx, mockDB, resourceID).Return(tc.rows, tc.dbErr)

			defs, actualError := repo.ListByResource(ctx, resourceID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				return
			}
			require.NoError(t, actualError)
			assert.Len(t, defs, tc.expectedCount)
			for _, d := range defs {
				assert.Len(t, d.Windows(), 10)
			}
		})
	}
}

func TestScheduleRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		rows          int64
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: schedule deleted", rows: 1},
		{name: "error: schedule not found", rows: 0, expectedError: true, expectKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockScheduleWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewScheduleRepository(mockQueries, mockDB)

			resourceID, scheduleID := uuid.New(), uuid.New()
			mockQueries.EXPECT().DeleteSchedule(ctx, mockDB, sqlc.DeleteScheduleParams{ID: scheduleID, ResourceID: resourceID}).Return(tc.rows, nil)

			actualError := repo.Delete(ctx, resourceID, scheduleID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind))
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
