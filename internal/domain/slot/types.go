package slot

import (
	"errors"
	"fmt"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound   = errors.New("slot not found in schedule")
	ErrInvalidKey     = errors.New("invalid slot key")
	ErrInvalidStatus  = errors.New("invalid slot status")
	ErrSlotNotMutable = errors.New("slot cannot be changed in its current status")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusBooked      Status = "booked"
	StatusMaintenance Status = "maintenance"
	StatusPast        Status = "past"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusMaintenance, StatusPast:
		return true
	default:
		return false
	}
}

// IsMark reports whether s is persisted in the booked index.
func (s Status) IsMark() bool {
	return s == StatusBooked || s == StatusMaintenance
}

// Key identifies one slot of a resource on a date.
type Key struct {
	ResourceID uuid.UUID
	Date       calendar.Date
	Start      calendar.TimeOfDay
}

func NewKey(resourceID uuid.UUID, date calendar.Date, start calendar.TimeOfDay) Key {
	return Key{ResourceID: resourceID, Date: date, Start: start}
}

// String renders "<resource>|<YYYY-MM-DD>|<HH:MM>".
func (k Key) String() string {
	return fmt.Sprintf("%s|%s|%s", k.ResourceID, k.Date, k.Start)
}

// BookedIndex holds booked and maintenance marks. Missing keys are not marked.
type BookedIndex map[Key]Status

func (idx BookedIndex) Mark(k Key, s Status) error {
	if !s.IsMark() {
		return ErrInvalidStatus
	}
	idx[k] = s
	return nil
}

// AvailableSlot is a concrete slot derived from a schedule definition.
type AvailableSlot struct {
	ResourceID uuid.UUID
	ScheduleID uuid.UUID
	Date       calendar.Date
	Start      calendar.TimeOfDay
	End        calendar.TimeOfDay
	Price      money.Money
	Status     Status
}

func (s AvailableSlot) Key() Key {
	return NewKey(s.ResourceID, s.Date, s.Start)
}

func (s AvailableSlot) IsAvailable() bool {
	return s.Status == StatusAvailable
}
