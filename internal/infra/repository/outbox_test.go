//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"court-slot-engine/internal/infra/repository"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	repositorymock "court-slot-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, mockDB)

	id := uuid.New()
	mockQueries.EXPECT().ClaimDueOutboxEvents(ctx, mockDB, gomock.Any()).Return([]sqlc.ClaimDueOutboxEventsRow{
		{ID: id, Topic: "booking.created", Payload: []byte(`{}`), Attempts: 2},
	}, nil)

	events, err := repo.ClaimDue(ctx, time.Now(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, id, events[0].ID)
	assert.Equal(t, 2, events[0].Attempts)
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		dead       bool
		wantStatus string
	}{
		{name: "retry keeps the event queued", dead: false, wantStatus: "queued"},
		{name: "exhausted event is dead", dead: true, wantStatus: "dead"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOutboxRepository(mockQueries, mockDB)

			next := time.Date(2025, time.June, 1, 0, 0, 30, 0, time.UTC)
			mockQueries.EXPECT().MarkOutboxEventFailed(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error {
					assert.Equal(t, tc.wantStatus, arg.Status)
					assert.Equal(t, "broker down", arg.LastError.String)
					assert.True(t, next.Equal(arg.RunAt.Time))
					return nil
				})

			require.NoError(t, repo.MarkFailed(ctx, uuid.New(), "broker down", next, tc.dead))
		})
	}
}
