//go:build unit

package slot_test

import (
	"testing"
	"time"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/schedule"
	"court-slot-engine/internal/domain/slot"
	"court-slot-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday.
var (
	monday  = calendar.NewDate(2025, time.June, 2)
	tuesday = monday.AddDays(1)
)

func hm(h, m int) calendar.TimeOfDay { return calendar.MustTimeOfDay(h, m) }

func TestMaterialize(t *testing.T) {
	resourceID := uuid.New()
	mon := builder.NewScheduleBuilder().WithResourceID(resourceID).MustBuild()

	t.Run("ten slots on a monday", func(t *testing.T) {
		got := slot.Materialize([]*schedule.Definition{mon}, nil, monday, monday, monday)

		require.Len(t, got, 10)
		for i, s := range got {
			assert.Equal(t, hm(7+i, 0), s.Start)
			assert.Equal(t, hm(8+i, 0), s.End)
			assert.Equal(t, slot.StatusAvailable, s.Status)
			assert.Equal(t, mon.ID(), s.ScheduleID)
			assert.Equal(t, int64(100000), s.Price.Amount())
		}
	})

	t.Run("weekday filter", func(t *testing.T) {
		got := slot.Materialize([]*schedule.Definition{mon}, nil, tuesday, tuesday.AddDays(5), monday)
		assert.Empty(t, got)

		got = slot.Materialize([]*schedule.Definition{mon}, nil, monday, monday.AddDays(13), monday)
		require.Len(t, got, 20)
		assert.True(t, got[10].Date.Equal(monday.AddDays(7)))
	})

	t.Run("partial window yields nothing", func(t *testing.T) {
		short := builder.NewScheduleBuilder().WithWindow(hm(8, 0), hm(8, 45)).MustBuild()
		assert.Empty(t, slot.Materialize([]*schedule.Definition{short}, nil, monday, monday, monday))
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		got := slot.Materialize([]*schedule.Definition{mon}, nil, tuesday, monday, monday)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("status precedence", func(t *testing.T) {
		index := slot.BookedIndex{
			slot.NewKey(resourceID, monday, hm(7, 0)): slot.StatusBooked,
			slot.NewKey(resourceID, monday, hm(8, 0)): slot.StatusMaintenance,
		}
		today := tuesday

		got := slot.Materialize([]*schedule.Definition{mon}, index, monday, monday, today)
		require.Len(t, got, 10)
		assert.Equal(t, slot.StatusBooked, got[0].Status)
		assert.Equal(t, slot.StatusMaintenance, got[1].Status)
		assert.Equal(t, slot.StatusPast, got[2].Status)

		got = slot.Materialize([]*schedule.Definition{mon}, index, monday, monday, monday)
		assert.Equal(t, slot.StatusBooked, got[0].Status)
		assert.Equal(t, slot.StatusMaintenance, got[1].Status)
		assert.Equal(t, slot.StatusAvailable, got[2].Status)
	})

	t.Run("marks of other resources are ignored", func(t *testing.T) {
		index := slot.BookedIndex{
			slot.NewKey(uuid.New(), monday, hm(7, 0)): slot.StatusBooked,
		}
		got := slot.Materialize([]*schedule.Definition{mon}, index, monday, monday, monday)
		assert.Equal(t, slot.StatusAvailable, got[0].Status)
	})

	t.Run("ordering across resources and schedules", func(t *testing.T) {
		otherResource := builder.NewScheduleBuilder().WithWindow(hm(7, 0), hm(9, 0)).MustBuild()
		evening := builder.NewScheduleBuilder().
			WithResourceID(resourceID).
			WithWindow(hm(18, 0), hm(20, 0)).
			MustBuild()

		got := slot.Materialize(
			[]*schedule.Definition{evening, otherResource, mon},
			nil, monday, monday.AddDays(7), monday,
		)
		require.Len(t, got, 2*(10+2+2))
		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			if c := prev.Date.Compare(cur.Date); c != 0 {
				assert.Negative(t, c)
				continue
			}
			assert.LessOrEqual(t, prev.Start, cur.Start)
		}
		assert.Equal(t, hm(18, 0), got[12].Start)
	})

	t.Run("identical inputs give identical output", func(t *testing.T) {
		index := slot.BookedIndex{slot.NewKey(resourceID, monday, hm(9, 0)): slot.StatusBooked}
		defs := []*schedule.Definition{mon}

		first := slot.Materialize(defs, index, monday, monday.AddDays(30), tuesday)
		second := slot.Materialize(defs, index, monday, monday.AddDays(30), tuesday)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("materialize not deterministic (-first +second):\n%s", diff)
		}
	})

	t.Run("alias matches", func(t *testing.T) {
		defs := []*schedule.Definition{mon}
		want := slot.Materialize(defs, nil, monday, monday, monday)
		got := slot.MaterializeSlots(defs, nil, monday, monday, monday)
		assert.Empty(t, cmp.Diff(want, got))
	})
}

func TestLookup(t *testing.T) {
	resourceID := uuid.New()
	mon := builder.NewScheduleBuilder().WithResourceID(resourceID).MustBuild()
	defs := []*schedule.Definition{mon}

	t.Run("found", func(t *testing.T) {
		s, ok := slot.Lookup(defs, nil, slot.NewKey(resourceID, monday, hm(10, 0)), monday)
		require.True(t, ok)
		assert.Equal(t, hm(11, 0), s.End)
		assert.True(t, s.IsAvailable())
	})

	t.Run("start not aligned with a window", func(t *testing.T) {
		_, ok := slot.Lookup(defs, nil, slot.NewKey(resourceID, monday, hm(10, 30)), monday)
		assert.False(t, ok)
	})

	t.Run("wrong resource", func(t *testing.T) {
		_, ok := slot.Lookup(defs, nil, slot.NewKey(uuid.New(), monday, hm(10, 0)), monday)
		assert.False(t, ok)
	})

	t.Run("booked slot reports its status", func(t *testing.T) {
		key := slot.NewKey(resourceID, monday, hm(10, 0))
		s, ok := slot.Lookup(defs, slot.BookedIndex{key: slot.StatusBooked}, key, monday)
		require.True(t, ok)
		assert.Equal(t, slot.StatusBooked, s.Status)
	})
}

func TestBookedIndex_Mark(t *testing.T) {
	idx := slot.BookedIndex{}
	key := slot.NewKey(uuid.New(), monday, hm(7, 0))

	require.NoError(t, idx.Mark(key, slot.StatusMaintenance))
	require.ErrorIs(t, idx.Mark(key, slot.StatusPast), slot.ErrInvalidStatus)
	assert.Equal(t, slot.StatusMaintenance, idx[key])
}
