//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/resource"
	"court-slot-engine/internal/domain/schedule"
	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/infra/memstore"
	"court-slot-engine/internal/pkg/clock"
	"court-slot-engine/internal/usecase/commands"
	"court-slot-engine/internal/usecase/shared"
	"court-slot-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	// Monday, one week before the booked slots.
	fixtureNow = time.Date(2025, time.May, 26, 10, 0, 0, 0, time.UTC)
	slotDate   = calendar.NewDate(2025, time.June, 2)
)

type fixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	owner    user.Actor
	customer user.Actor
	resource *resource.Resource
	schedule *schedule.Definition

	bookings  commands.BookingCommands
	schedules commands.ScheduleCommands
	slots     commands.SlotCommands
}

// newFixture seeds one resource with Monday 07:00-17:00 hourly slots at 100000.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:    memstore.New(),
		clock:    clock.NewMockClock(fixtureNow),
		owner:    user.NewActor(uuid.New(), user.RoleOwner),
		customer: user.NewActor(uuid.New(), user.RoleCustomer),
	}
	f.resource = builder.NewResourceBuilder().WithOwnerID(f.owner.ID).MustBuild()
	f.schedule = builder.NewScheduleBuilder().WithResourceID(f.resource.ID()).MustBuild()

	err := f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Resources().Create(ctx, f.resource); err != nil {
			return err
		}
		return tx.Schedules().Create(ctx, f.schedule)
	})
	require.NoError(t, err)

	f.bookings = commands.NewBookingUseCase(f.store, f.clock, nil)
	f.schedules = commands.NewScheduleUseCase(f.store, f.clock)
	f.slots = commands.NewSlotUseCase(f.store, f.clock)
	return f
}

func (f *fixture) bookAt(t *testing.T, hour int) *booking.Booking {
	t.Helper()
	b, err := f.bookings.Book(context.Background(), f.request(hour), f.customer.ID)
	require.NoError(t, err)
	return b
}

func (f *fixture) request(hour int) commands.BookRequest {
	return commands.BookRequest{
		ResourceID: f.resource.ID(),
		Date:       slotDate,
		Start:      calendar.MustTimeOfDay(hour, 0),
	}
}

// outboxTopics drains the outbox the way the dispatcher does and returns the topics in order.
func (f *fixture) outboxTopics(t *testing.T) []string {
	t.Helper()
	var topics []string
	err := f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		events, err := tx.Outbox().ClaimDue(ctx, f.clock.Now(), 0)
		if err != nil {
			return err
		}
		for _, e := range events {
			topics = append(topics, e.Topic)
			if err := tx.Outbox().MarkSent(ctx, e.ID, f.clock.Now()); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	return topics
}
