//go:build unit

package schedule_test

import (
	"testing"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"
	"court-slot-engine/internal/domain/schedule"
	"court-slot-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ScheduleBuilder)
	errIs  error
}

func hm(h, m int) calendar.TimeOfDay { return calendar.MustTimeOfDay(h, m) }

func TestNewDefinition(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewScheduleBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, []int{1}, actual.Weekdays().Ints())
		assert.Equal(t, "07:00", actual.Start().String())
		assert.Equal(t, "17:00", actual.End().String())
		assert.Equal(t, int64(100000), actual.Price().Amount())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "start equals end",
				mutate: func(b *builder.ScheduleBuilder) { b.WithWindow(hm(9, 0), hm(9, 0)) },
				errIs:  schedule.ErrInvalidTimeRange,
			},
			{
				name:   "start after end",
				mutate: func(b *builder.ScheduleBuilder) { b.WithWindow(hm(18, 0), hm(9, 0)) },
				errIs:  schedule.ErrInvalidTimeRange,
			},
			{
				name:   "window until midnight",
				mutate: func(b *builder.ScheduleBuilder) { b.WithWindow(hm(20, 0), calendar.TimeOfDay(calendar.MinutesPerDay)) },
			},
			{
				name:   "zero slot duration",
				mutate: func(b *builder.ScheduleBuilder) { b.WithSlotMinutes(0) },
				errIs:  schedule.ErrInvalidSlotDuration,
			},
			{
				name:   "negative slot duration",
				mutate: func(b *builder.ScheduleBuilder) { b.WithSlotMinutes(-30) },
				errIs:  schedule.ErrInvalidSlotDuration,
			},
			{
				name:   "no weekdays",
				mutate: func(b *builder.ScheduleBuilder) { b.WithWeekdays() },
				errIs:  calendar.ErrEmptyWeekdays,
			},
			{
				name:   "weekday out of range",
				mutate: func(b *builder.ScheduleBuilder) { b.WithWeekdays(1, 8) },
				errIs:  calendar.ErrInvalidWeekday,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ScheduleBuilder) { b.WithPrice(-1) },
				errIs:  money.ErrNegativeAmount,
			},
			{
				name:   "free slots",
				mutate: func(b *builder.ScheduleBuilder) { b.WithPrice(0) },
			},
		})
	})
}

func TestDefinition_Windows(t *testing.T) {
	t.Run("ten hourly slots", func(t *testing.T) {
		d := builder.NewScheduleBuilder().MustBuild()

		windows := d.Windows()
		require.Len(t, windows, 10)
		assert.Equal(t, "07:00", windows[0].Start.String())
		assert.Equal(t, "08:00", windows[0].End.String())
		assert.Equal(t, "16:00", windows[9].Start.String())
		assert.Equal(t, "17:00", windows[9].End.String())
	})

	t.Run("partial trailing period is dropped", func(t *testing.T) {
		d := builder.NewScheduleBuilder().WithWindow(hm(8, 0), hm(8, 45)).MustBuild()
		assert.Empty(t, d.Windows())

		d = builder.NewScheduleBuilder().WithWindow(hm(8, 0), hm(10, 30)).MustBuild()
		require.Len(t, d.Windows(), 2)
		assert.Equal(t, "10:00", d.Windows()[1].End.String())
	})
}

func TestAddSchedule(t *testing.T) {
	resourceID := uuid.New()
	base := builder.NewScheduleBuilder().
		WithResourceID(resourceID).
		WithWeekdays(1, 3, 5).
		WithWindow(hm(8, 0), hm(12, 0)).
		MustBuild()

	cases := []struct {
		name   string
		mutate func(*builder.ScheduleBuilder)
		errIs  error
	}{
		{
			name:   "same day overlapping window",
			mutate: func(b *builder.ScheduleBuilder) { b.WithWeekdays(3).WithWindow(hm(11, 0), hm(13, 0)) },
			errIs:  schedule.ErrScheduleOverlap,
		},
		{
			name:   "contained window",
			mutate: func(b *builder.ScheduleBuilder) { b.WithWeekdays(5).WithWindow(hm(9, 0), hm(10, 0)) },
			errIs:  schedule.ErrScheduleOverlap,
		},
		{
			name:   "adjacent window does not overlap",
			mutate: func(b *builder.ScheduleBuilder) { b.WithWeekdays(1).WithWindow(hm(12, 0), hm(14, 0)) },
		},
		{
			name:   "adjacent before does not overlap",
			mutate: func(b *builder.ScheduleBuilder) { b.WithWeekdays(1).WithWindow(hm(6, 0), hm(8, 0)) },
		},
		{
			name:   "disjoint weekdays",
			mutate: func(b *builder.ScheduleBuilder) { b.WithWeekdays(2, 4).WithWindow(hm(8, 0), hm(12, 0)) },
		},
		{
			name: "other resource",
			mutate: func(b *builder.ScheduleBuilder) {
				b.WithResourceID(uuid.New()).WithWeekdays(1).WithWindow(hm(8, 0), hm(12, 0))
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			existing := []*schedule.Definition{base}
			candidate := builder.NewScheduleBuilder().WithResourceID(resourceID).With(c.mutate).MustBuild()

			got, err := schedule.AddSchedule(existing, candidate)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Contains(t, err.Error(), base.ID().String())
				assert.Nil(t, got)
				assert.Len(t, existing, 1)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Same(t, candidate, got[1])
			assert.Len(t, existing, 1)
		})
	}
}

func TestAddSchedule_NoOverlapAfterSequence(t *testing.T) {
	resourceID := uuid.New()
	var set []*schedule.Definition

	attempts := []struct {
		days       []int
		start, end calendar.TimeOfDay
	}{
		{[]int{1, 2, 3, 4, 5}, hm(7, 0), hm(12, 0)},
		{[]int{1}, hm(11, 0), hm(13, 0)},
		{[]int{1, 2, 3, 4, 5}, hm(13, 0), hm(22, 0)},
		{[]int{6, 7}, hm(6, 0), hm(23, 0)},
		{[]int{5, 6}, hm(21, 0), hm(23, 30)},
		{[]int{1, 2, 3, 4, 5}, hm(12, 0), hm(13, 0)},
	}
	for _, a := range attempts {
		candidate := builder.NewScheduleBuilder().
			WithResourceID(resourceID).
			WithWeekdays(a.days...).
			WithWindow(a.start, a.end).
			MustBuild()
		if next, err := schedule.AddSchedule(set, candidate); err == nil {
			set = next
		}
	}

	require.Len(t, set, 4)
	for i := range set {
		for j := i + 1; j < len(set); j++ {
			assert.False(t, set[i].Overlaps(set[j]), "%s overlaps %s", set[i].ID(), set[j].ID())
		}
	}
}

func TestRemove(t *testing.T) {
	a := builder.NewScheduleBuilder().MustBuild()
	b := builder.NewScheduleBuilder().WithWeekdays(2).MustBuild()

	got, err := schedule.Remove([]*schedule.Definition{a, b}, a.ID())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID(), got[0].ID())

	_, err = schedule.Remove(got, uuid.New())
	require.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewScheduleBuilder().With(c.mutate).BuildDomain()

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
