//go:build unit

package revenue_test

import (
	"testing"
	"time"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"
	"court-slot-engine/internal/domain/revenue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) calendar.Date { return calendar.NewDate(y, m, d) }

func TestAggregate(t *testing.T) {
	t.Run("gap fill by month", func(t *testing.T) {
		raw := []revenue.PeriodStat{{Key: "2025-03", Amount: money.MustNew(500000), Count: 2}}

		got := revenue.Aggregate(raw, date(2025, 1, 1), date(2025, 5, 31), revenue.Month)

		require.Len(t, got, 5)
		wantKeys := []string{"2025-01", "2025-02", "2025-03", "2025-04", "2025-05"}
		for i, b := range got {
			assert.Equal(t, wantKeys[i], b.Key)
			if b.Key == "2025-03" {
				assert.Equal(t, int64(500000), b.Amount.Amount())
				assert.Equal(t, 2, b.Count)
				continue
			}
			assert.True(t, b.Amount.IsZero(), b.Key)
			assert.Zero(t, b.Count, b.Key)
		}
	})

	t.Run("duplicates are summed and strays ignored", func(t *testing.T) {
		raw := []revenue.PeriodStat{
			{Key: "2025-Q2", Amount: money.MustNew(100), Count: 1},
			{Key: "2025-Q2", Amount: money.MustNew(250), Count: 2},
			{Key: "2024-Q4", Amount: money.MustNew(999), Count: 9},
			{Key: "garbage", Amount: money.MustNew(1), Count: 1},
		}

		got := revenue.Aggregate(raw, date(2025, 2, 15), date(2025, 8, 1), revenue.Quarter)

		require.Len(t, got, 3)
		assert.Equal(t, []string{"2025-Q1", "2025-Q2", "2025-Q3"}, []string{got[0].Key, got[1].Key, got[2].Key})
		assert.Equal(t, int64(350), got[1].Amount.Amount())
		assert.Equal(t, 3, got[1].Count)

		total, count := revenue.Total(got)
		assert.Equal(t, int64(350), total.Amount())
		assert.Equal(t, 3, count)
	})

	t.Run("quarter buckets across a year boundary", func(t *testing.T) {
		raw := []revenue.PeriodStat{{Key: "2025-Q1", Amount: money.MustNew(42000), Count: 1}}

		got := revenue.Aggregate(raw, date(2024, 11, 1), date(2025, 4, 30), revenue.Quarter)

		want := []revenue.Bucket{
			{Key: "2024-Q4", Amount: money.Zero()},
			{Key: "2025-Q1", Amount: money.MustNew(42000), Count: 1},
			{Key: "2025-Q2", Amount: money.Zero()},
		}
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i].Key, got[i].Key)
			assert.Equal(t, want[i].Amount.Amount(), got[i].Amount.Amount(), want[i].Key)
			assert.Equal(t, want[i].Count, got[i].Count, want[i].Key)
		}
	})

	t.Run("year buckets", func(t *testing.T) {
		got := revenue.Aggregate(nil, date(2023, 12, 31), date(2025, 1, 1), revenue.Year)
		require.Len(t, got, 3)
		assert.Equal(t, "2023", got[0].Key)
		assert.Equal(t, "2025", got[2].Key)
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		got := revenue.Aggregate(nil, date(2025, 5, 1), date(2025, 1, 1), revenue.Month)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestPeriodKey(t *testing.T) {
	cases := []struct {
		d    calendar.Date
		g    revenue.Granularity
		want string
	}{
		{date(2025, 3, 31), revenue.Month, "2025-03"},
		{date(2025, 3, 31), revenue.Quarter, "2025-Q1"},
		{date(2025, 4, 1), revenue.Quarter, "2025-Q2"},
		{date(2025, 12, 31), revenue.Quarter, "2025-Q4"},
		{date(2025, 12, 31), revenue.Year, "2025"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, revenue.PeriodKey(c.d, c.g))
	}
}

func TestParseGranularity(t *testing.T) {
	g, err := revenue.ParseGranularity(" Quarter ")
	require.NoError(t, err)
	assert.Equal(t, revenue.Quarter, g)

	_, err = revenue.ParseGranularity("week")
	require.ErrorIs(t, err, revenue.ErrInvalidGranularity)
}
