package calendar

import (
	"errors"
	"strings"
)

var (
	ErrInvalidWeekday = errors.New("weekday must be between 1 (Monday) and 7 (Sunday)")
	ErrEmptyWeekdays  = errors.New("at least one weekday is required")
)

type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if !w.IsValid() {
		return "invalid"
	}
	return weekdayNames[w]
}

// WeekdaySet is a bitmask over ISO weekdays.
type WeekdaySet uint8

func NewWeekdaySet(days ...int) (WeekdaySet, error) {
	if len(days) == 0 {
		return 0, ErrEmptyWeekdays
	}
	var s WeekdaySet
	for _, d := range days {
		wd := Weekday(d)
		if !wd.IsValid() {
			return 0, ErrInvalidWeekday
		}
		s |= 1 << uint(wd)
	}
	return s, nil
}

func (s WeekdaySet) Contains(w Weekday) bool {
	return w.IsValid() && s&(1<<uint(w)) != 0
}

func (s WeekdaySet) Intersects(o WeekdaySet) bool {
	return s&o != 0
}

func (s WeekdaySet) IsEmpty() bool {
	return s == 0
}

// Days returns the members in ascending order.
func (s WeekdaySet) Days() []Weekday {
	out := make([]Weekday, 0, 7)
	for w := Monday; w <= Sunday; w++ {
		if s.Contains(w) {
			out = append(out, w)
		}
	}
	return out
}

func (s WeekdaySet) Ints() []int {
	days := s.Days()
	out := make([]int, len(days))
	for i, d := range days {
		out[i] = int(d)
	}
	return out
}

func (s WeekdaySet) String() string {
	days := s.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ",")
}
