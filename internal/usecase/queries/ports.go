package queries

import (
	"court-slot-engine/internal/infra"
	"court-slot-engine/internal/pkg/errs"
)

// Metrics is the subset of collectors the read side reports to.
type Metrics interface {
	SlotsMaterialized(n int)
}

type noopMetrics struct{}

func (noopMetrics) SlotsMaterialized(int) {}

func orNoop(m Metrics) Metrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}

func readErr(err error, notFound error) error {
	if notFound != nil && infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
