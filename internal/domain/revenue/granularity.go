package revenue

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"court-slot-engine/internal/domain/calendar"
)

var ErrInvalidGranularity = errors.New("granularity must be month, quarter or year")

type Granularity string

const (
	Month   Granularity = "month"
	Quarter Granularity = "quarter"
	Year    Granularity = "year"
)

func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(s)))
	if !g.IsValid() {
		return "", ErrInvalidGranularity
	}
	return g, nil
}

func (g Granularity) IsValid() bool {
	switch g {
	case Month, Quarter, Year:
		return true
	default:
		return false
	}
}

func (g Granularity) String() string {
	return string(g)
}

// PeriodKey formats the period containing d: "2025-03", "2025-Q1" or "2025".
func PeriodKey(d calendar.Date, g Granularity) string {
	switch g {
	case Quarter:
		return fmt.Sprintf("%04d-Q%d", d.Year(), (int(d.Month())-1)/3+1)
	case Year:
		return fmt.Sprintf("%04d", d.Year())
	default:
		return fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
	}
}

// PeriodKeys lists every period touched by [start, end] in chronological order.
func PeriodKeys(start, end calendar.Date, g Granularity) []string {
	if end.Before(start) {
		return []string{}
	}
	keys := make([]string, 0)
	cur := periodStart(start, g)
	for !cur.After(end) {
		keys = append(keys, PeriodKey(cur, g))
		cur = nextPeriod(cur, g)
	}
	return keys
}

func periodStart(d calendar.Date, g Granularity) calendar.Date {
	switch g {
	case Quarter:
		m := (int(d.Month())-1)/3*3 + 1
		return calendar.NewDate(d.Year(), time.Month(m), 1)
	case Year:
		return calendar.NewDate(d.Year(), 1, 1)
	default:
		return calendar.NewDate(d.Year(), d.Month(), 1)
	}
}

func nextPeriod(d calendar.Date, g Granularity) calendar.Date {
	switch g {
	case Quarter:
		return calendar.NewDate(d.Year(), d.Month()+3, 1)
	case Year:
		return calendar.NewDate(d.Year()+1, 1, 1)
	default:
		return calendar.NewDate(d.Year(), d.Month()+1, 1)
	}
}
