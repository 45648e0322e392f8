//go:build unit || e2e

package builder

import (
	"time"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/schedule"
	reqdto "court-slot-engine/internal/handler/dto/request"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ScheduleBuilder struct {
	ResourceID  uuid.UUID
	Weekdays    []int
	Start       calendar.TimeOfDay
	End         calendar.TimeOfDay
	SlotMinutes int
	Price       int64
	CreatedAt   time.Time
}

// NewScheduleBuilder defaults to Monday 07:00-17:00 in 60 minute slots at 100000.
func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		ResourceID:  uuid.New(),
		Weekdays:    []int{1},
		Start:       calendar.MustTimeOfDay(7, 0),
		End:         calendar.MustTimeOfDay(17, 0),
		SlotMinutes: 60,
		Price:       100000,
		CreatedAt:   time.Now(),
	}
}

func (s *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *ScheduleBuilder) BuildDomain() (*schedule.Definition, error) {
	return schedule.NewDefinition(s.params(), s.CreatedAt)
}

func (s *ScheduleBuilder) MustBuild() *schedule.Definition {
	d, err := s.BuildDomain()
	if err != nil {
		panic(err)
	}
	return d
}

func (s *ScheduleBuilder) BuildInfra() sqlc.ScheduleDefinitions {
	days := make([]int16, len(s.Weekdays))
	for i, d := range s.Weekdays {
		days[i] = int16(d)
	}
	return sqlc.ScheduleDefinitions{
		ID:          uuid.New(),
		ResourceID:  s.ResourceID,
		Weekdays:    days,
		StartMinute: int32(s.Start.Minutes()),
		EndMinute:   int32(s.End.Minutes()),
		SlotMinutes: int32(s.SlotMinutes),
		Price:       s.Price,
		CreatedAt:   pgconv.TimeToPgtype(s.CreatedAt),
	}
}

func (s *ScheduleBuilder) BuildCreateRequestDTO() reqdto.CreateScheduleRequest {
	return reqdto.CreateScheduleRequest{
		Weekdays:            s.Weekdays,
		StartTime:           s.Start.String(),
		EndTime:             s.End.String(),
		SlotDurationMinutes: s.SlotMinutes,
		PricePerSlot:        s.Price,
	}
}

func (s *ScheduleBuilder) params() schedule.Params {
	return schedule.Params{
		ResourceID:  s.ResourceID,
		Weekdays:    s.Weekdays,
		Start:       s.Start,
		End:         s.End,
		SlotMinutes: s.SlotMinutes,
		Price:       s.Price,
	}
}

// Fluent builder methods
func (s *ScheduleBuilder) WithResourceID(id uuid.UUID) *ScheduleBuilder {
	s.ResourceID = id
	return s
}

func (s *ScheduleBuilder) WithWeekdays(days ...int) *ScheduleBuilder {
	s.Weekdays = days
	return s
}

func (s *ScheduleBuilder) WithWindow(start, end calendar.TimeOfDay) *ScheduleBuilder {
	s.Start = start
	s.End = end
	return s
}

func (s *ScheduleBuilder) WithSlotMinutes(m int) *ScheduleBuilder {
	s.SlotMinutes = m
	return s
}

func (s *ScheduleBuilder) WithPrice(p int64) *ScheduleBuilder {
	s.Price = p
	return s
}
