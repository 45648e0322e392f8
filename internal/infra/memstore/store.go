// Package memstore is an in-process implementation of the usecase persistence
// contracts. Each write unit runs alone under one lock against a copy of the
// committed state, so a failing unit leaves nothing behind.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/domain/promotion"
	"court-slot-engine/internal/domain/resource"
	"court-slot-engine/internal/domain/schedule"
	"court-slot-engine/internal/domain/slot"
	"court-slot-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type slotMark struct {
	status    slot.Status
	bookingID uuid.UUID
}

type outboxRow struct {
	event     shared.OutboxEvent
	status    string
	runAt     time.Time
	lastError string
	seq       int
}

// state values are never mutated in place; writers replace entries with fresh copies.
type state struct {
	resources  map[uuid.UUID]resource.Resource
	schedules  map[uuid.UUID][]schedule.Definition
	slots      map[slot.Key]slotMark
	bookings   map[uuid.UUID]booking.Snapshot
	promotions map[uuid.UUID]promotion.Promotion
	outbox     map[uuid.UUID]outboxRow
	outboxSeq  int
}

func newState() *state {
	return &state{
		resources:  make(map[uuid.UUID]resource.Resource),
		schedules:  make(map[uuid.UUID][]schedule.Definition),
		slots:      make(map[slot.Key]slotMark),
		bookings:   make(map[uuid.UUID]booking.Snapshot),
		promotions: make(map[uuid.UUID]promotion.Promotion),
		outbox:     make(map[uuid.UUID]outboxRow),
	}
}

func (s *state) clone() *state {
	sched := make(map[uuid.UUID][]schedule.Definition, len(s.schedules))
	for k, v := range s.schedules {
		sched[k] = slices.Clone(v)
	}
	return &state{
		resources:  maps.Clone(s.resources),
		schedules:  sched,
		slots:      maps.Clone(s.slots),
		bookings:   maps.Clone(s.bookings),
		promotions: maps.Clone(s.promotions),
		outbox:     maps.Clone(s.outbox),
		outboxSeq:  s.outboxSeq,
	}
}

type Store struct {
	mu    sync.RWMutex
	state *state
}

func New() *Store {
	return &Store{state: newState()}
}

// Within runs fn against a private copy and publishes it only when fn succeeds.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := s.state.clone()
	if err := fn(ctx, &memTx{st: work}); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, r shared.Reads) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, &memReads{tx: &memTx{st: s.state}})
}

type memTx struct {
	st *state
}

func (t *memTx) Resources() shared.ResourceRepository   { return &resourceRepo{st: t.st} }
func (t *memTx) Schedules() shared.ScheduleRepository   { return &scheduleRepo{st: t.st} }
func (t *memTx) SlotStates() shared.SlotStateRepository { return &slotStateRepo{st: t.st} }
func (t *memTx) Bookings() shared.BookingRepository     { return &bookingRepo{st: t.st} }
func (t *memTx) Promotions() shared.PromotionRepository { return &promotionRepo{st: t.st} }
func (t *memTx) Outbox() shared.OutboxRepository        { return &outboxRepo{st: t.st} }

type memReads struct {
	tx *memTx
}

func (r *memReads) Resources() shared.ResourceReader      { return r.tx.Resources() }
func (r *memReads) Schedules() shared.ScheduleReader      { return r.tx.Schedules() }
func (r *memReads) SlotStates() shared.SlotStateReader    { return r.tx.SlotStates() }
func (r *memReads) Promotions() shared.PromotionReader    { return r.tx.Promotions() }
func (r *memReads) Bookings() shared.BookingReader        { return r.tx.Bookings() }
func (r *memReads) BookingList() shared.BookingListReader { return &bookingListReader{st: r.tx.st} }
func (r *memReads) Revenue() shared.RevenueReader         { return &revenueReader{st: r.tx.st} }
