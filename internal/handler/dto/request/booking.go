package request

import (
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	StartTime  string    `json:"start_time" binding:"required"`
}

func (r CreateBookingRequest) ToCommand() (commands.BookRequest, error) {
	date, err := calendar.ParseDate(r.Date)
	if err != nil {
		return commands.BookRequest{}, err
	}
	start, err := calendar.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return commands.BookRequest{}, err
	}
	return commands.BookRequest{ResourceID: r.ResourceID, Date: date, Start: start}, nil
}
