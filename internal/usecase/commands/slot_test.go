//go:build unit

package commands_test

import (
	"context"
	"testing"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/slot"
	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/infra/memstore"
	"court-slot-engine/internal/usecase/commands"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maintenance(f *fixture, hour int, enabled bool) commands.MaintenanceRequest {
	return commands.MaintenanceRequest{
		ResourceID: f.resource.ID(),
		Date:       slotDate,
		Start:      calendar.MustTimeOfDay(hour, 0),
		Enabled:    enabled,
	}
}

func TestSetMaintenance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.slots.SetMaintenance(ctx, maintenance(f, 8, true), f.owner))
	// Repeating is harmless.
	require.NoError(t, f.slots.SetMaintenance(ctx, maintenance(f, 8, true), f.owner))

	_, err := f.bookings.Book(ctx, f.request(8), f.customer.ID)
	require.ErrorIs(t, err, booking.ErrSlotUnavailable)

	require.NoError(t, f.slots.SetMaintenance(ctx, maintenance(f, 8, false), f.owner))
	require.NoError(t, f.slots.SetMaintenance(ctx, maintenance(f, 8, false), f.owner))

	_, err = f.bookings.Book(ctx, f.request(8), f.customer.ID)
	assert.NoError(t, err)
}

func TestSetMaintenance_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture) (commands.MaintenanceRequest, user.Actor)
		errIs error
	}{
		{
			name: "booked slot",
			setup: func(f *fixture) (commands.MaintenanceRequest, user.Actor) {
				if _, err := f.bookings.Book(context.Background(), f.request(9), f.customer.ID); err != nil {
					panic(err)
				}
				return maintenance(f, 9, true), f.owner
			},
			errIs: booking.ErrSlotUnavailable,
		},
		{
			name: "slot not in any schedule",
			setup: func(f *fixture) (commands.MaintenanceRequest, user.Actor) {
				return maintenance(f, 20, true), f.owner
			},
			errIs: errs.ErrSlotNotFound,
		},
		{
			name: "past slot",
			setup: func(f *fixture) (commands.MaintenanceRequest, user.Actor) {
				req := maintenance(f, 9, true)
				req.Date = slotDate.AddDays(-14)
				return req, f.owner
			},
			errIs: booking.ErrSlotUnavailable,
		},
		{
			name: "customer",
			setup: func(f *fixture) (commands.MaintenanceRequest, user.Actor) {
				return maintenance(f, 9, true), f.customer
			},
			errIs: errs.ErrForbidden,
		},
		{
			name: "unknown resource",
			setup: func(f *fixture) (commands.MaintenanceRequest, user.Actor) {
				req := maintenance(f, 9, true)
				req.ResourceID = uuid.New()
				return req, f.owner
			},
			errIs: errs.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req, actor := tt.setup(f)

			err := f.slots.SetMaintenance(context.Background(), req, actor)

			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

// bookingRaceStore lets a booking claim the slot just before the maintenance mark is written.
type bookingRaceStore struct {
	*memstore.Store
}

func (s bookingRaceStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.Store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, bookingRaceTx{Tx: tx})
	})
}

type bookingRaceTx struct {
	shared.Tx
}

func (t bookingRaceTx) SlotStates() shared.SlotStateRepository {
	return bookingRaceSlots{SlotStateRepository: t.Tx.SlotStates()}
}

type bookingRaceSlots struct {
	shared.SlotStateRepository
}

func (s bookingRaceSlots) SetMaintenance(ctx context.Context, key slot.Key, enabled bool) error {
	if err := s.Claim(ctx, key, uuid.New()); err != nil {
		return err
	}
	return s.SlotStateRepository.SetMaintenance(ctx, key, enabled)
}

func TestSetMaintenance_LosesRaceToBooking(t *testing.T) {
	f := newFixture(t)
	slots := commands.NewSlotUseCase(bookingRaceStore{Store: f.store}, f.clock)

	err := slots.SetMaintenance(context.Background(), maintenance(f, 10, true), f.owner)

	require.ErrorIs(t, err, booking.ErrSlotUnavailable)
	assert.NotErrorIs(t, err, errs.ErrDatabaseOperationFailed)
}
