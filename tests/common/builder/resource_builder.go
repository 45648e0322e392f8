//go:build unit || e2e

package builder

import (
	"time"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/resource"
	reqdto "court-slot-engine/internal/handler/dto/request"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ResourceBuilder struct {
	ID          uuid.UUID
	VenueID     uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Timezone    string
	Deposit     float64
	WindowHours int
	Refund      float64
	CreatedAt   time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:          uuid.New(),
		VenueID:     uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Court 1",
		Timezone:    "UTC",
		Deposit:     30,
		WindowHours: 24,
		Refund:      50,
		CreatedAt:   time.Now(),
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ResourceBuilder) BuildDomain() (*resource.Resource, error) {
	return resource.NewResource(
		r.ID, r.VenueID, r.OwnerID, r.Name, r.Timezone,
		booking.MustPolicy(r.Deposit, r.WindowHours, r.Refund),
		r.CreatedAt,
	)
}

func (r *ResourceBuilder) MustBuild() *resource.Resource {
	res, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return res
}

func (r *ResourceBuilder) BuildInfra() sqlc.Resources {
	return sqlc.Resources{
		ID:                      r.ID,
		VenueID:                 r.VenueID,
		OwnerID:                 r.OwnerID,
		Name:                    r.Name,
		Timezone:                r.Timezone,
		DepositPercentage:       pgconv.DecimalToNumeric(decimal.NewFromFloat(r.Deposit)),
		CancellationWindowHours: int32(r.WindowHours),
		RefundPercentage:        pgconv.DecimalToNumeric(decimal.NewFromFloat(r.Refund)),
		CreatedAt:               pgconv.TimeToPgtype(r.CreatedAt),
		UpdatedAt:               pgconv.TimeToPgtype(r.CreatedAt),
	}
}

func (r *ResourceBuilder) BuildCreateRequestDTO() reqdto.CreateResourceRequest {
	deposit := decimal.NewFromFloat(r.Deposit)
	refund := decimal.NewFromFloat(r.Refund)
	window := r.WindowHours
	return reqdto.CreateResourceRequest{
		VenueID:                 r.VenueID,
		Name:                    r.Name,
		Timezone:                r.Timezone,
		DepositPercentage:       &deposit,
		CancellationWindowHours: &window,
		RefundPercentage:        &refund,
	}
}

// Fluent builder methods
func (r *ResourceBuilder) WithID(id uuid.UUID) *ResourceBuilder {
	r.ID = id
	return r
}

func (r *ResourceBuilder) WithOwnerID(id uuid.UUID) *ResourceBuilder {
	r.OwnerID = id
	return r
}

func (r *ResourceBuilder) WithVenueID(id uuid.UUID) *ResourceBuilder {
	r.VenueID = id
	return r
}

func (r *ResourceBuilder) WithName(name string) *ResourceBuilder {
	r.Name = name
	return r
}

func (r *ResourceBuilder) WithTimezone(tz string) *ResourceBuilder {
	r.Timezone = tz
	return r
}

func (r *ResourceBuilder) WithPolicy(deposit float64, windowHours int, refund float64) *ResourceBuilder {
	r.Deposit = deposit
	r.WindowHours = windowHours
	r.Refund = refund
	return r
}
