//go:build unit

package booking_test

import (
	"testing"
	"time"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/money"
	"court-slot-engine/internal/domain/slot"
	"court-slot-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBook(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, b.CustomerID, actual.CustomerID())
		assert.Equal(t, time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC), actual.StartsAt())
		assert.Equal(t, time.Date(2025, time.June, 2, 11, 0, 0, 0, time.UTC), actual.EndsAt())
		assert.Equal(t, int64(30000), actual.Deposit().Amount())
		assert.Equal(t, slot.NewKey(b.ResourceID, b.Date, b.Start), actual.SlotKey())
	})

	t.Run("slot availability", func(t *testing.T) {
		startsAt := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
		runCases(t, []testCase{
			{
				name:   "booked slot",
				mutate: func(b *builder.BookingBuilder) { b.WithSlotStatus(slot.StatusBooked) },
				errIs:  booking.ErrSlotUnavailable,
			},
			{
				name:   "maintenance slot",
				mutate: func(b *builder.BookingBuilder) { b.WithSlotStatus(slot.StatusMaintenance) },
				errIs:  booking.ErrSlotUnavailable,
			},
			{
				name:   "past slot",
				mutate: func(b *builder.BookingBuilder) { b.WithSlotStatus(slot.StatusPast) },
				errIs:  booking.ErrSlotUnavailable,
			},
			{
				name:   "slot starting now",
				mutate: func(b *builder.BookingBuilder) { b.WithNow(startsAt) },
				errIs:  booking.ErrSlotUnavailable,
			},
			{
				name:   "slot already started",
				mutate: func(b *builder.BookingBuilder) { b.WithNow(startsAt.Add(10 * time.Minute)) },
				errIs:  booking.ErrSlotUnavailable,
			},
			{
				name:   "one minute before start",
				mutate: func(b *builder.BookingBuilder) { b.WithNow(startsAt.Add(-time.Minute)) },
			},
		})
	})

	t.Run("start is resolved in the resource zone", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*3600)
		// 10:00 at UTC+7 is 03:00 UTC, so 05:00 UTC is already too late
		b := builder.NewBookingBuilder().
			WithLocation(loc).
			WithNow(time.Date(2025, time.June, 2, 5, 0, 0, 0, time.UTC))
		_, err := b.BuildDomain()
		require.ErrorIs(t, err, booking.ErrSlotUnavailable)

		b.WithNow(time.Date(2025, time.June, 2, 2, 0, 0, 0, time.UTC))
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		assert.True(t, actual.StartsAt().Equal(time.Date(2025, time.June, 2, 3, 0, 0, 0, time.UTC)))
	})
}

func TestBooking_Cancel(t *testing.T) {
	policy := booking.MustPolicy(30, 24, 50)
	startsAt := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		cancelAt   time.Time
		wantRefund int64
	}{
		{name: "exactly at the window boundary", cancelAt: startsAt.Add(-24 * time.Hour), wantRefund: 50000},
		{name: "one minute inside the window", cancelAt: startsAt.Add(-23*time.Hour - 59*time.Minute), wantRefund: 0},
		{name: "well before the window", cancelAt: startsAt.Add(-72 * time.Hour), wantRefund: 50000},
		{name: "after start", cancelAt: startsAt.Add(time.Hour), wantRefund: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bk := builder.NewBookingBuilder().WithPolicy(policy).WithPrice(100000).MustBuild()

			refund, err := bk.Cancel(c.cancelAt)
			require.NoError(t, err)
			assert.Equal(t, c.wantRefund, refund.Amount())
			assert.Equal(t, booking.StatusCancelled, bk.Status())
			assert.Equal(t, c.wantRefund, bk.RefundAmount().Amount())
			require.NotNil(t, bk.CancelledAt())
		})
	}

	t.Run("zero window always refunds before start", func(t *testing.T) {
		bk := builder.NewBookingBuilder().WithPolicy(booking.MustPolicy(0, 0, 100)).MustBuild()
		refund, err := bk.Cancel(startsAt.Add(-time.Second))
		require.NoError(t, err)
		assert.Equal(t, int64(100000), refund.Amount())
	})

	t.Run("confirmed bookings can be cancelled", func(t *testing.T) {
		bk := builder.NewBookingBuilder().BuildWithStatus(booking.StatusConfirmed)
		_, err := bk.Cancel(startsAt.Add(-48 * time.Hour))
		require.NoError(t, err)
	})

	t.Run("terminal states reject cancel", func(t *testing.T) {
		for _, st := range []booking.Status{booking.StatusCancelled, booking.StatusCompleted} {
			bk := builder.NewBookingBuilder().BuildWithStatus(st)
			_, err := bk.Cancel(startsAt.Add(-48 * time.Hour))
			require.ErrorIs(t, err, booking.ErrInvalidState, st.String())
		}
	})
}

func TestBooking_Transitions(t *testing.T) {
	now := time.Date(2025, time.May, 27, 0, 0, 0, 0, time.UTC)

	t.Run("confirm payment requires the deposit", func(t *testing.T) {
		bk := builder.NewBookingBuilder().MustBuild()

		err := bk.ConfirmPayment(money.MustNew(29999), now)
		require.ErrorIs(t, err, booking.ErrInsufficientDeposit)
		assert.Equal(t, booking.StatusPending, bk.Status())

		require.NoError(t, bk.ConfirmPayment(money.MustNew(30000), now))
		assert.Equal(t, booking.StatusConfirmed, bk.Status())
		require.NotNil(t, bk.ConfirmedAt())

		require.ErrorIs(t, bk.ConfirmPayment(money.MustNew(30000), now), booking.ErrInvalidState)
	})

	t.Run("complete only after the slot ends", func(t *testing.T) {
		bk := builder.NewBookingBuilder().BuildWithStatus(booking.StatusConfirmed)

		require.ErrorIs(t, bk.Complete(bk.EndsAt().Add(-time.Second)), booking.ErrSlotNotFinished)
		require.NoError(t, bk.Complete(bk.EndsAt()))
		assert.Equal(t, booking.StatusCompleted, bk.Status())
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		bk := builder.NewBookingBuilder().MustBuild()
		require.ErrorIs(t, bk.Complete(bk.EndsAt().Add(time.Hour)), booking.ErrInvalidState)
	})

	t.Run("expire releases a pending booking without refund", func(t *testing.T) {
		bk := builder.NewBookingBuilder().MustBuild()
		require.NoError(t, bk.Expire(now))
		assert.Equal(t, booking.StatusCancelled, bk.Status())
		assert.True(t, bk.RefundAmount().IsZero())

		confirmed := builder.NewBookingBuilder().BuildWithStatus(booking.StatusConfirmed)
		require.ErrorIs(t, confirmed.Expire(now), booking.ErrInvalidState)
	})

	t.Run("reconstruct round trips the snapshot", func(t *testing.T) {
		bk := builder.NewBookingBuilder().BuildWithStatus(booking.StatusConfirmed)
		again := booking.Reconstruct(bk.Snapshot())
		assert.Equal(t, bk.Snapshot(), again.Snapshot())
	})
}

func TestNewPolicy(t *testing.T) {
	cases := []struct {
		name    string
		deposit string
		window  int
		refund  string
		wantErr bool
	}{
		{name: "valid", deposit: "30", window: 24, refund: "50"},
		{name: "bounds", deposit: "0", window: 0, refund: "100"},
		{name: "deposit above 100", deposit: "100.5", window: 24, refund: "50", wantErr: true},
		{name: "negative refund", deposit: "30", window: 24, refund: "-1", wantErr: true},
		{name: "negative window", deposit: "30", window: -1, refund: "50", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := booking.NewPolicy(decimal.RequireFromString(c.deposit), c.window, decimal.RequireFromString(c.refund))
			if c.wantErr {
				require.ErrorIs(t, err, booking.ErrInvalidPolicy)
				return
			}
			require.NoError(t, err)
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
