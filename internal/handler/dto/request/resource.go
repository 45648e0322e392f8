package request

import (
	"court-slot-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateResourceRequest struct {
	VenueID                 uuid.UUID        `json:"venue_id" binding:"required"`
	Name                    string           `json:"name" binding:"required,max=100"`
	Timezone                string           `json:"timezone,omitempty"`
	DepositPercentage       *decimal.Decimal `json:"deposit_percentage,omitempty"`
	CancellationWindowHours *int             `json:"cancellation_window_hours,omitempty" binding:"omitempty,min=0"`
	RefundPercentage        *decimal.Decimal `json:"refund_percentage,omitempty"`
}

func (r CreateResourceRequest) ToCommand() commands.CreateResourceRequest {
	return commands.CreateResourceRequest{
		VenueID:  r.VenueID,
		Name:     r.Name,
		Timezone: r.Timezone,
		Policy: commands.PolicyPatch{
			DepositPercentage:       r.DepositPercentage,
			CancellationWindowHours: r.CancellationWindowHours,
			RefundPercentage:        r.RefundPercentage,
		},
	}
}

// UpdatePolicyRequest is a partial update; omitted fields keep their value.
type UpdatePolicyRequest struct {
	DepositPercentage       *decimal.Decimal `json:"deposit_percentage,omitempty"`
	CancellationWindowHours *int             `json:"cancellation_window_hours,omitempty" binding:"omitempty,min=0"`
	RefundPercentage        *decimal.Decimal `json:"refund_percentage,omitempty"`
}

func (r UpdatePolicyRequest) ToPatch() commands.PolicyPatch {
	return commands.PolicyPatch{
		DepositPercentage:       r.DepositPercentage,
		CancellationWindowHours: r.CancellationWindowHours,
		RefundPercentage:        r.RefundPercentage,
	}
}
