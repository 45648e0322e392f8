package converter

import (
	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/resource"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ResourceFromRow(row sqlc.Resources) (*resource.Resource, error) {
	policy, err := policyFromColumns(row.DepositPercentage, row.CancellationWindowHours, row.RefundPercentage)
	if err != nil {
		return nil, err
	}
	return resource.ReconstructResource(
		row.ID,
		row.VenueID,
		row.OwnerID,
		row.Name,
		row.Timezone,
		policy,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ResourceToCreateParams(r *resource.Resource) sqlc.CreateResourceParams {
	p := r.Policy()
	return sqlc.CreateResourceParams{
		ID:                      r.ID(),
		VenueID:                 r.VenueID(),
		OwnerID:                 r.OwnerID(),
		Name:                    r.Name(),
		Timezone:                r.Timezone(),
		DepositPercentage:       pgconv.DecimalToNumeric(p.DepositPercentage().Decimal()),
		CancellationWindowHours: int32(p.CancellationWindowHours()), // #nosec G115 -- validated by booking.NewPolicy
		RefundPercentage:        pgconv.DecimalToNumeric(p.RefundPercentage().Decimal()),
		CreatedAt:               pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:               pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ResourceToPolicyParams(r *resource.Resource) sqlc.UpdateResourcePolicyParams {
	p := r.Policy()
	return sqlc.UpdateResourcePolicyParams{
		ID:                      r.ID(),
		DepositPercentage:       pgconv.DecimalToNumeric(p.DepositPercentage().Decimal()),
		CancellationWindowHours: int32(p.CancellationWindowHours()), // #nosec G115 -- validated by booking.NewPolicy
		RefundPercentage:        pgconv.DecimalToNumeric(p.RefundPercentage().Decimal()),
		UpdatedAt:               pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func policyFromColumns(deposit pgtype.Numeric, windowHours int32, refund pgtype.Numeric) (booking.Policy, error) {
	d, err := pgconv.DecimalFromNumeric(deposit)
	if err != nil {
		return booking.Policy{}, err
	}
	rf, err := pgconv.DecimalFromNumeric(refund)
	if err != nil {
		return booking.Policy{}, err
	}
	return booking.NewPolicy(d, int(windowHours), rf)
}
