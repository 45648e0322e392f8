package slot

import (
	"bytes"
	"sort"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/schedule"
)

// Materialize expands schedules into concrete slots for every date in
// [rangeStart, rangeEnd]. Slots dated before today are Past unless the index marks them.
// The result is ordered by date, start, resource and schedule.
func Materialize(
	schedules []*schedule.Definition,
	index BookedIndex,
	rangeStart, rangeEnd calendar.Date,
	today calendar.Date,
) []AvailableSlot {
	if rangeEnd.Before(rangeStart) {
		return []AvailableSlot{}
	}

	out := make([]AvailableSlot, 0)
	for d := rangeStart; !d.After(rangeEnd); d = d.AddDays(1) {
		out = appendDay(out, schedules, index, d, today)
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// MaterializeSlots is Materialize under its service-facing name.
func MaterializeSlots(
	schedules []*schedule.Definition,
	index BookedIndex,
	rangeStart, rangeEnd calendar.Date,
	today calendar.Date,
) []AvailableSlot {
	return Materialize(schedules, index, rangeStart, rangeEnd, today)
}

// Lookup materializes the key's date and returns the slot starting at key.Start.
func Lookup(
	schedules []*schedule.Definition,
	index BookedIndex,
	key Key,
	today calendar.Date,
) (AvailableSlot, bool) {
	own := make([]*schedule.Definition, 0, len(schedules))
	for _, s := range schedules {
		if s.ResourceID() == key.ResourceID {
			own = append(own, s)
		}
	}
	for _, s := range Materialize(own, index, key.Date, key.Date, today) {
		if s.Start == key.Start {
			return s, true
		}
	}
	return AvailableSlot{}, false
}

func appendDay(
	out []AvailableSlot,
	schedules []*schedule.Definition,
	index BookedIndex,
	date calendar.Date,
	today calendar.Date,
) []AvailableSlot {
	wd := date.Weekday()
	for _, def := range schedules {
		if !def.Weekdays().Contains(wd) {
			continue
		}
		for _, w := range def.Windows() {
			key := NewKey(def.ResourceID(), date, w.Start)
			out = append(out, AvailableSlot{
				ResourceID: def.ResourceID(),
				ScheduleID: def.ID(),
				Date:       date,
				Start:      w.Start,
				End:        w.End,
				Price:      def.Price(),
				Status:     statusOf(index, key, date, today),
			})
		}
	}
	return out
}

func statusOf(index BookedIndex, key Key, date, today calendar.Date) Status {
	switch index[key] {
	case StatusBooked:
		return StatusBooked
	case StatusMaintenance:
		return StatusMaintenance
	}
	if date.Before(today) {
		return StatusPast
	}
	return StatusAvailable
}

func less(a, b AvailableSlot) bool {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c < 0
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if c := bytes.Compare(a.ResourceID[:], b.ResourceID[:]); c != 0 {
		return c < 0
	}
	return bytes.Compare(a.ScheduleID[:], b.ScheduleID[:]) < 0
}
