package commands

import (
	"context"

	"court-slot-engine/internal/domain/resource"
	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/infra"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// Metrics is the subset of collectors the write side reports to. A nil *metrics.Metrics is valid.
type Metrics interface {
	BookingOutcome(outcome string)
	Cancellation(refunded bool)
}

type noopMetrics struct{}

func (noopMetrics) BookingOutcome(string)  {}
func (noopMetrics) Cancellation(bool)      {}
func (noopMetrics) OutboxPublished(string) {}

func orNoop(m Metrics) Metrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}

// repoErr maps a NOT_FOUND repository error to notFound and marks everything else as a database failure.
func repoErr(err error, notFound error) error {
	if notFound != nil && infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

// lockManagedResource row-locks the resource and checks that actor may manage it.
func lockManagedResource(ctx context.Context, tx shared.Tx, id uuid.UUID, actor user.Actor) (*resource.Resource, error) {
	res, err := tx.Resources().Lock(ctx, id)
	if err != nil {
		return nil, repoErr(err, errs.ErrResourceNotFound)
	}
	if !actor.CanManage(res.OwnerID()) {
		return nil, errs.ErrForbidden
	}
	return res, nil
}
