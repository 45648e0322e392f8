package readstore

import (
	"context"

	"court-slot-engine/internal/domain/money"
	"court-slot-engine/internal/domain/revenue"
	"court-slot-engine/internal/infra"
	sqlc "court-slot-engine/internal/infra/sqlc/generated"
	"court-slot-engine/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// RevenueReadStore sums completed bookings per period of their slot date.
type RevenueReadStore struct {
	db sqlc.DBTX
}

func NewRevenueReadStore(db sqlc.DBTX) *RevenueReadStore {
	return &RevenueReadStore{db: db}
}

func (r *RevenueReadStore) PeriodStats(ctx context.Context, f shared.RevenueFilter) ([]revenue.PeriodStat, error) {
	query, args, err := PeriodStatsQuery(f)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build revenue query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query revenue", err)
	}
	defer rows.Close()

	var stats []revenue.PeriodStat
	for rows.Next() {
		var (
			key    string
			amount int64
			count  int64
		)
		if err := rows.Scan(&key, &amount, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan revenue row", err)
		}
		m, err := money.New(amount)
		if err != nil {
			return nil, infra.WrapRepoErr("negative revenue for "+key, err)
		}
		stats = append(stats, revenue.PeriodStat{Key: key, Amount: m, Count: int(count)})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read revenue rows", err)
	}
	return stats, nil
}

// PeriodStatsQuery renders the grouped revenue query for f. Period keys match revenue.PeriodKey.
func PeriodStatsQuery(f shared.RevenueFilter) (string, []any, error) {
	key := periodKeyExpr(f.Granularity)
	q := psql.
		Select(key+" AS period", "COALESCE(SUM(b.price), 0)::bigint AS amount", "COUNT(*) AS bookings").
		From("bookings b").
		Where(sq.Eq{"b.status": "completed"}).
		Where(sq.GtOrEq{"b.slot_date": f.From.Time()}).
		Where(sq.LtOrEq{"b.slot_date": f.To.Time()})

	if f.ResourceID != nil {
		q = q.Where(sq.Eq{"b.resource_id": *f.ResourceID})
	}
	if f.VenueID != nil {
		q = q.Join("resources r ON r.id = b.resource_id").Where(sq.Eq{"r.venue_id": *f.VenueID})
	}

	return q.GroupBy("period").OrderBy("period").ToSql()
}

func periodKeyExpr(g revenue.Granularity) string {
	switch g {
	case revenue.Quarter:
		return "to_char(b.slot_date, 'YYYY') || '-Q' || to_char(b.slot_date, 'Q')"
	case revenue.Year:
		return "to_char(b.slot_date, 'YYYY')"
	default:
		return "to_char(b.slot_date, 'YYYY-MM')"
	}
}
