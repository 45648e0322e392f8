package memstore

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"time"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"
	"court-slot-engine/internal/domain/promotion"
	"court-slot-engine/internal/domain/resource"
	"court-slot-engine/internal/domain/revenue"
	"court-slot-engine/internal/domain/schedule"
	"court-slot-engine/internal/domain/slot"
	"court-slot-engine/internal/infra"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var errDuplicate = errors.New("duplicate key")

const (
	outboxQueued = "queued"
	outboxSent   = "sent"
	outboxDead   = "dead"
)

// =============================================================================
// Resources
// =============================================================================

type resourceRepo struct{ st *state }

func (r *resourceRepo) FindByID(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	res, ok := r.st.resources[id]
	if !ok {
		return nil, infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return &res, nil
}

// Lock is FindByID: the store lock already serializes writers.
func (r *resourceRepo) Lock(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	return r.FindByID(ctx, id)
}

func (r *resourceRepo) Create(_ context.Context, res *resource.Resource) error {
	if _, ok := r.st.resources[res.ID()]; ok {
		return infra.WrapRepoErr("failed to create resource", errDuplicate, infra.KindDuplicateKey)
	}
	r.st.resources[res.ID()] = *res
	return nil
}

func (r *resourceRepo) UpdatePolicy(_ context.Context, res *resource.Resource) error {
	if _, ok := r.st.resources[res.ID()]; !ok {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	r.st.resources[res.ID()] = *res
	return nil
}

// =============================================================================
// Schedules
// =============================================================================

type scheduleRepo struct{ st *state }

func (r *scheduleRepo) ListByResource(_ context.Context, resourceID uuid.UUID) ([]*schedule.Definition, error) {
	stored := r.st.schedules[resourceID]
	out := make([]*schedule.Definition, len(stored))
	for i := range stored {
		d := stored[i]
		out[i] = &d
	}
	return out, nil
}

func (r *scheduleRepo) Create(_ context.Context, d *schedule.Definition) error {
	if _, ok := r.st.resources[d.ResourceID()]; !ok {
		return infra.WrapRepoErr("failed to create schedule", nil, infra.KindForeignKeyViolated)
	}
	r.st.schedules[d.ResourceID()] = append(r.st.schedules[d.ResourceID()], *d)
	return nil
}

func (r *scheduleRepo) Delete(_ context.Context, resourceID, id uuid.UUID) error {
	stored := r.st.schedules[resourceID]
	for i := range stored {
		if stored[i].ID() == id {
			r.st.schedules[resourceID] = append(stored[:i:i], stored[i+1:]...)
			return nil
		}
	}
	return infra.WrapRepoErr("schedule not found", nil, infra.KindNotFound)
}

// =============================================================================
// Slot states
// =============================================================================

type slotStateRepo struct{ st *state }

func (r *slotStateRepo) ListRange(_ context.Context, resourceID uuid.UUID, from, to calendar.Date) (slot.BookedIndex, error) {
	idx := make(slot.BookedIndex)
	for k, m := range r.st.slots {
		if k.ResourceID != resourceID || k.Date.Before(from) || k.Date.After(to) {
			continue
		}
		idx[k] = m.status
	}
	return idx, nil
}

func (r *slotStateRepo) Get(_ context.Context, key slot.Key) (slot.Status, bool, error) {
	m, ok := r.st.slots[key]
	return m.status, ok, nil
}

func (r *slotStateRepo) Claim(_ context.Context, key slot.Key, bookingID uuid.UUID) error {
	if _, ok := r.st.slots[key]; ok {
		return infra.WrapRepoErr("failed to claim slot "+key.String(), errDuplicate, infra.KindDuplicateKey)
	}
	r.st.slots[key] = slotMark{status: slot.StatusBooked, bookingID: bookingID}
	return nil
}

func (r *slotStateRepo) Release(_ context.Context, key slot.Key, bookingID uuid.UUID) error {
	m, ok := r.st.slots[key]
	if !ok || m.status != slot.StatusBooked || m.bookingID != bookingID {
		return infra.WrapRepoErr("slot claim not found "+key.String(), nil, infra.KindNotFound)
	}
	delete(r.st.slots, key)
	return nil
}

func (r *slotStateRepo) SetMaintenance(_ context.Context, key slot.Key, enabled bool) error {
	m, ok := r.st.slots[key]
	if !enabled {
		if ok && m.status == slot.StatusMaintenance {
			delete(r.st.slots, key)
		}
		return nil
	}
	if ok {
		return infra.WrapRepoErr("failed to set maintenance "+key.String(), errDuplicate, infra.KindDuplicateKey)
	}
	r.st.slots[key] = slotMark{status: slot.StatusMaintenance}
	return nil
}

// =============================================================================
// Bookings
// =============================================================================

type bookingRepo struct{ st *state }

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.st.bookings[b.ID()]; ok {
		return infra.WrapRepoErr("failed to create booking", errDuplicate, infra.KindDuplicateKey)
	}
	if _, ok := r.st.resources[b.ResourceID()]; !ok {
		return infra.WrapRepoErr("failed to create booking", nil, infra.KindForeignKeyViolated)
	}
	r.st.bookings[b.ID()] = b.Snapshot()
	return nil
}

func (r *bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	snap, ok := r.st.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return booking.Reconstruct(snap), nil
}

func (r *bookingRepo) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.FindByID(ctx, id)
}

func (r *bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.st.bookings[b.ID()]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.st.bookings[b.ID()] = b.Snapshot()
	return nil
}

func (r *bookingRepo) ListConfirmedEndedBefore(_ context.Context, t time.Time, limit int) ([]*booking.Booking, error) {
	return r.collect(limit, func(s booking.Snapshot) bool {
		return s.Status == booking.StatusConfirmed && !s.EndsAt.After(t)
	}, func(a, b booking.Snapshot) bool {
		return a.EndsAt.Before(b.EndsAt)
	}), nil
}

func (r *bookingRepo) ListPendingCreatedBefore(_ context.Context, t time.Time, limit int) ([]*booking.Booking, error) {
	return r.collect(limit, func(s booking.Snapshot) bool {
		return s.Status == booking.StatusPending && !s.CreatedAt.After(t)
	}, func(a, b booking.Snapshot) bool {
		return a.CreatedAt.Before(b.CreatedAt)
	}), nil
}

func (r *bookingRepo) collect(limit int, keep func(booking.Snapshot) bool, less func(a, b booking.Snapshot) bool) []*booking.Booking {
	var snaps []booking.Snapshot
	for _, s := range r.st.bookings {
		if keep(s) {
			snaps = append(snaps, s)
		}
	}
	sort.Slice(snaps, func(i, j int) bool {
		if less(snaps[i], snaps[j]) {
			return true
		}
		if less(snaps[j], snaps[i]) {
			return false
		}
		return bytes.Compare(snaps[i].ID[:], snaps[j].ID[:]) < 0
	})
	if limit > 0 && len(snaps) > limit {
		snaps = snaps[:limit]
	}
	out := make([]*booking.Booking, len(snaps))
	for i, s := range snaps {
		out[i] = booking.Reconstruct(s)
	}
	return out
}

// =============================================================================
// Promotions
// =============================================================================

type promotionRepo struct{ st *state }

func (r *promotionRepo) ListByScopes(_ context.Context, scopeIDs []uuid.UUID) ([]*promotion.Promotion, error) {
	want := make(map[uuid.UUID]struct{}, len(scopeIDs))
	for _, id := range scopeIDs {
		want[id] = struct{}{}
	}
	var out []*promotion.Promotion
	for _, p := range r.st.promotions {
		if _, ok := want[p.ScopeID()]; ok {
			cp := p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].ValidFrom().Compare(out[j].ValidFrom()); c != 0 {
			return c < 0
		}
		return bytes.Compare(out[i].ID().Bytes(), out[j].ID().Bytes()) < 0
	})
	return out, nil
}

func (r *promotionRepo) Create(_ context.Context, p *promotion.Promotion) error {
	if _, ok := r.st.promotions[p.ID()]; ok {
		return infra.WrapRepoErr("failed to create promotion", errDuplicate, infra.KindDuplicateKey)
	}
	r.st.promotions[p.ID()] = *p
	return nil
}

// =============================================================================
// Outbox
// =============================================================================

type outboxRepo struct{ st *state }

func (r *outboxRepo) Enqueue(_ context.Context, topic string, payload []byte, runAt time.Time) error {
	r.st.outboxSeq++
	id := uuid.New()
	r.st.outbox[id] = outboxRow{
		event:  shared.OutboxEvent{ID: id, Topic: topic, Payload: bytes.Clone(payload)},
		status: outboxQueued,
		runAt:  runAt,
		seq:    r.st.outboxSeq,
	}
	return nil
}

func (r *outboxRepo) ClaimDue(_ context.Context, now time.Time, limit int) ([]shared.OutboxEvent, error) {
	var due []outboxRow
	for _, row := range r.st.outbox {
		if row.status == outboxQueued && !row.runAt.After(now) {
			due = append(due, row)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].runAt.Equal(due[j].runAt) {
			return due[i].runAt.Before(due[j].runAt)
		}
		return due[i].seq < due[j].seq
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	out := make([]shared.OutboxEvent, len(due))
	for i, row := range due {
		row.event.Attempts++
		r.st.outbox[row.event.ID] = row
		out[i] = row.event
	}
	return out, nil
}

func (r *outboxRepo) MarkSent(_ context.Context, id uuid.UUID, _ time.Time) error {
	row, ok := r.st.outbox[id]
	if !ok {
		return infra.WrapRepoErr("outbox event not found", nil, infra.KindNotFound)
	}
	row.status = outboxSent
	row.lastError = ""
	r.st.outbox[id] = row
	return nil
}

func (r *outboxRepo) MarkFailed(_ context.Context, id uuid.UUID, errMsg string, nextRunAt time.Time, dead bool) error {
	row, ok := r.st.outbox[id]
	if !ok {
		return infra.WrapRepoErr("outbox event not found", nil, infra.KindNotFound)
	}
	row.status = outboxQueued
	if dead {
		row.status = outboxDead
	}
	row.lastError = errMsg
	row.runAt = nextRunAt
	r.st.outbox[id] = row
	return nil
}

// =============================================================================
// Read models
// =============================================================================

type bookingListReader struct{ st *state }

func (r *bookingListReader) ListByCustomer(_ context.Context, customerID uuid.UUID, after *shared.KeysetCursor, limit int) ([]*booking.Booking, error) {
	var snaps []booking.Snapshot
	for _, s := range r.st.bookings {
		if s.CustomerID != customerID {
			continue
		}
		if after != nil && !keysetBefore(s, *after) {
			continue
		}
		snaps = append(snaps, s)
	}
	sort.Slice(snaps, func(i, j int) bool {
		return keysetBefore(snaps[j], shared.KeysetCursor{CreatedAt: snaps[i].CreatedAt, ID: snaps[i].ID})
	})
	if limit > 0 && len(snaps) > limit {
		snaps = snaps[:limit]
	}
	out := make([]*booking.Booking, len(snaps))
	for i, s := range snaps {
		out[i] = booking.Reconstruct(s)
	}
	return out, nil
}

// keysetBefore reports whether s sorts after c in (created_at, id) descending order.
func keysetBefore(s booking.Snapshot, c shared.KeysetCursor) bool {
	created := s.CreatedAt.Truncate(time.Microsecond)
	cursor := c.CreatedAt.Truncate(time.Microsecond)
	if !created.Equal(cursor) {
		return created.Before(cursor)
	}
	return bytes.Compare(s.ID[:], c.ID[:]) < 0
}

type revenueReader struct{ st *state }

func (r *revenueReader) PeriodStats(_ context.Context, f shared.RevenueFilter) ([]revenue.PeriodStat, error) {
	byKey := make(map[string]*revenue.PeriodStat)
	var keys []string
	for _, s := range r.st.bookings {
		if s.Status != booking.StatusCompleted || s.Date.Before(f.From) || s.Date.After(f.To) {
			continue
		}
		if f.ResourceID != nil && s.ResourceID != *f.ResourceID {
			continue
		}
		if f.VenueID != nil {
			res, ok := r.st.resources[s.ResourceID]
			if !ok || res.VenueID() != *f.VenueID {
				continue
			}
		}
		k := revenue.PeriodKey(s.Date, f.Granularity)
		stat, ok := byKey[k]
		if !ok {
			stat = &revenue.PeriodStat{Key: k, Amount: money.Zero()}
			byKey[k] = stat
			keys = append(keys, k)
		}
		stat.Amount = stat.Amount.Add(s.Price)
		stat.Count++
	}
	sort.Strings(keys)
	out := make([]revenue.PeriodStat, len(keys))
	for i, k := range keys {
		out[i] = *byKey[k]
	}
	return out, nil
}
