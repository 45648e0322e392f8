package revenue

import (
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"
)

// PeriodStat is a raw per-period revenue figure, typically one row of a grouped query.
type PeriodStat struct {
	Key    string
	Amount money.Money
	Count  int
}

type Bucket struct {
	Key    string      `json:"key"`
	Amount money.Money `json:"-"`
	Count  int         `json:"count"`
}

// Aggregate returns one bucket per period in [rangeStart, rangeEnd], zero-filled and in
// chronological order. Duplicate raw keys are summed and keys outside the range are ignored.
func Aggregate(raw []PeriodStat, rangeStart, rangeEnd calendar.Date, g Granularity) []Bucket {
	keys := PeriodKeys(rangeStart, rangeEnd, g)
	out := make([]Bucket, len(keys))
	pos := make(map[string]int, len(keys))
	for i, k := range keys {
		out[i] = Bucket{Key: k}
		pos[k] = i
	}

	for _, s := range raw {
		i, ok := pos[s.Key]
		if !ok {
			continue
		}
		out[i].Amount = out[i].Amount.Add(s.Amount)
		out[i].Count += s.Count
	}
	return out
}

func Total(buckets []Bucket) (money.Money, int) {
	total := money.Zero()
	count := 0
	for _, b := range buckets {
		total = total.Add(b.Amount)
		count += b.Count
	}
	return total, count
}
