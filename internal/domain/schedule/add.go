package schedule

import (
	"fmt"

	"github.com/google/uuid"
)

// AddSchedule validates candidate against the resource's existing rules and returns the
// extended set. existing is never mutated. Callers must hold a per-resource lock or
// transaction across load, AddSchedule and save.
func AddSchedule(existing []*Definition, candidate *Definition) ([]*Definition, error) {
	if candidate.start >= candidate.end {
		return nil, ErrInvalidTimeRange
	}
	if candidate.slotMinutes <= 0 {
		return nil, ErrInvalidSlotDuration
	}

	for _, e := range existing {
		if e.resourceID != candidate.resourceID {
			continue
		}
		if e.Overlaps(candidate) {
			return nil, fmt.Errorf("%w: conflicts with %s (%s %s-%s)",
				ErrScheduleOverlap, e.id, e.weekdays, e.start, e.end)
		}
	}

	out := make([]*Definition, 0, len(existing)+1)
	out = append(out, existing...)
	return append(out, candidate), nil
}

// Remove returns the set without the definition identified by id.
func Remove(existing []*Definition, id uuid.UUID) ([]*Definition, error) {
	out := make([]*Definition, 0, len(existing))
	found := false
	for _, e := range existing {
		if e.id == id {
			found = true
			continue
		}
		out = append(out, e)
	}
	if !found {
		return nil, ErrScheduleNotFound
	}
	return out, nil
}
