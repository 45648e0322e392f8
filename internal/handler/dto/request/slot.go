package request

import (
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type MaintenanceRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// ToCommand takes the slot date and start from the request path.
func (r MaintenanceRequest) ToCommand(resourceID uuid.UUID, date, start string) (commands.MaintenanceRequest, error) {
	d, err := calendar.ParseDate(date)
	if err != nil {
		return commands.MaintenanceRequest{}, err
	}
	s, err := calendar.ParseTimeOfDay(start)
	if err != nil {
		return commands.MaintenanceRequest{}, err
	}
	return commands.MaintenanceRequest{ResourceID: resourceID, Date: d, Start: s, Enabled: *r.Enabled}, nil
}

// DateRange is parsed from the from and to query parameters.
type DateRange struct {
	From calendar.Date
	To   calendar.Date
}

func ParseDateRange(from, to string) (DateRange, error) {
	f, err := calendar.ParseDate(from)
	if err != nil {
		return DateRange{}, err
	}
	t, err := calendar.ParseDate(to)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{From: f, To: t}, nil
}
