package converter

import (
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"
	"court-slot-engine/internal/domain/schedule"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/pgconv"
)

func ScheduleFromRow(row sqlc.ScheduleDefinitions) (*schedule.Definition, error) {
	days := make([]int, len(row.Weekdays))
	for i, d := range row.Weekdays {
		days[i] = int(d)
	}
	weekdays, err := calendar.NewWeekdaySet(days...)
	if err != nil {
		return nil, err
	}
	start, err := calendar.TimeOfDayFromMinutes(int(row.StartMinute))
	if err != nil {
		return nil, err
	}
	end, err := calendar.TimeOfDayFromMinutes(int(row.EndMinute))
	if err != nil {
		return nil, err
	}
	price, err := money.New(row.Price)
	if err != nil {
		return nil, err
	}
	return schedule.ReconstructDefinition(
		row.ID,
		row.ResourceID,
		weekdays,
		start,
		end,
		int(row.SlotMinutes),
		price,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func ScheduleToCreateParams(d *schedule.Definition) sqlc.CreateScheduleParams {
	ints := d.Weekdays().Ints()
	weekdays := make([]int16, len(ints))
	for i, v := range ints {
		weekdays[i] = int16(v) // #nosec G115 -- weekdays are 1..7
	}
	return sqlc.CreateScheduleParams{
		ID:          d.ID(),
		ResourceID:  d.ResourceID(),
		Weekdays:    weekdays,
		StartMinute: int32(d.Start().Minutes()), // #nosec G115 -- bounded by MinutesPerDay
		EndMinute:   int32(d.End().Minutes()),   // #nosec G115 -- bounded by MinutesPerDay
		SlotMinutes: int32(d.SlotMinutes()),     // #nosec G115 -- bounded by MaxSlotMinutes
		Price:       d.Price().Amount(),
		CreatedAt:   pgconv.TimeToPgtype(d.CreatedAt()),
	}
}
