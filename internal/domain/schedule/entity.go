package schedule

import (
	"errors"
	"time"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeRange    = errors.New("schedule start time must be before end time")
	ErrInvalidSlotDuration = errors.New("slot duration must be positive")
	ErrScheduleOverlap     = errors.New("schedule overlaps an existing schedule")
	ErrScheduleNotFound    = errors.New("schedule not found")
)

const MaxSlotMinutes = calendar.MinutesPerDay

// Definition is a recurring weekly availability rule for one resource.
type Definition struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	weekdays    calendar.WeekdaySet
	start       calendar.TimeOfDay
	end         calendar.TimeOfDay
	slotMinutes int
	price       money.Money
	createdAt   time.Time
}

type Params struct {
	ResourceID  uuid.UUID
	Weekdays    []int
	Start       calendar.TimeOfDay
	End         calendar.TimeOfDay
	SlotMinutes int
	Price       int64
}

func NewDefinition(p Params, now time.Time) (*Definition, error) {
	weekdays, err := calendar.NewWeekdaySet(p.Weekdays...)
	if err != nil {
		return nil, err
	}
	if p.Start >= p.End {
		return nil, ErrInvalidTimeRange
	}
	if p.SlotMinutes <= 0 || p.SlotMinutes > MaxSlotMinutes {
		return nil, ErrInvalidSlotDuration
	}
	price, err := money.New(p.Price)
	if err != nil {
		return nil, err
	}

	return &Definition{
		id:          uuid.New(),
		resourceID:  p.ResourceID,
		weekdays:    weekdays,
		start:       p.Start,
		end:         p.End,
		slotMinutes: p.SlotMinutes,
		price:       price,
		createdAt:   now,
	}, nil
}

// ReconstructDefinition rebuilds a persisted definition without re-validating it.
func ReconstructDefinition(
	id, resourceID uuid.UUID,
	weekdays calendar.WeekdaySet,
	start, end calendar.TimeOfDay,
	slotMinutes int,
	price money.Money,
	createdAt time.Time,
) *Definition {
	return &Definition{
		id:          id,
		resourceID:  resourceID,
		weekdays:    weekdays,
		start:       start,
		end:         end,
		slotMinutes: slotMinutes,
		price:       price,
		createdAt:   createdAt,
	}
}

// Window is one generated [Start, End) interval.
type Window struct {
	Start calendar.TimeOfDay
	End   calendar.TimeOfDay
}

// Windows returns consecutive slot windows. A trailing period shorter than one slot is dropped.
func (d *Definition) Windows() []Window {
	if d.slotMinutes <= 0 || d.start >= d.end {
		return nil
	}
	out := make([]Window, 0, (d.end.Minutes()-d.start.Minutes())/d.slotMinutes)
	for s := d.start; s.AddMinutes(d.slotMinutes) <= d.end; s = s.AddMinutes(d.slotMinutes) {
		out = append(out, Window{Start: s, End: s.AddMinutes(d.slotMinutes)})
	}
	return out
}

// Overlaps reports whether both rules share a weekday and their [start,end) windows intersect.
func (d *Definition) Overlaps(o *Definition) bool {
	if !d.weekdays.Intersects(o.weekdays) {
		return false
	}
	return d.start < o.end && o.start < d.end
}

func (d *Definition) ID() uuid.UUID                 { return d.id }
func (d *Definition) ResourceID() uuid.UUID         { return d.resourceID }
func (d *Definition) Weekdays() calendar.WeekdaySet { return d.weekdays }
func (d *Definition) Start() calendar.TimeOfDay     { return d.start }
func (d *Definition) End() calendar.TimeOfDay       { return d.end }
func (d *Definition) SlotMinutes() int              { return d.slotMinutes }
func (d *Definition) Price() money.Money            { return d.price }
func (d *Definition) CreatedAt() time.Time          { return d.createdAt }
