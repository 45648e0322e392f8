package request

import (
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateScheduleRequest uses ISO weekdays, 1 (Monday) to 7 (Sunday).
type CreateScheduleRequest struct {
	Weekdays            []int  `json:"weekdays" binding:"required,min=1"`
	StartTime           string `json:"start_time" binding:"required"`
	EndTime             string `json:"end_time" binding:"required"`
	SlotDurationMinutes int    `json:"slot_duration_minutes" binding:"required,min=1"`
	PricePerSlot        int64  `json:"price_per_slot" binding:"min=0"`
}

func (r CreateScheduleRequest) ToCommand(resourceID uuid.UUID) (commands.AddScheduleRequest, error) {
	start, err := calendar.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return commands.AddScheduleRequest{}, err
	}
	end, err := calendar.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return commands.AddScheduleRequest{}, err
	}
	return commands.AddScheduleRequest{
		ResourceID:  resourceID,
		Weekdays:    r.Weekdays,
		Start:       start,
		End:         end,
		SlotMinutes: r.SlotDurationMinutes,
		Price:       r.PricePerSlot,
	}, nil
}
