package promotion

import (
	"bytes"
	"time"

	"court-slot-engine/internal/domain/money"

	"github.com/google/uuid"
)

// Quote is a resolved price and the promotion that produced it, if any.
type Quote struct {
	Base        money.Money
	Final       money.Money
	PromotionID *uuid.UUID
}

func (q Quote) Discounted() bool {
	return q.PromotionID != nil
}

// Resolve applies the best promotion active at now whose scope is one of scopes.
// Promotions never stack. Ties go to the earliest validFrom, then the lowest id.
func Resolve(base money.Money, scopes []uuid.UUID, promotions []*Promotion, now time.Time) Quote {
	q := Quote{Base: base, Final: base}

	var best *Promotion
	for _, p := range promotions {
		if p == nil || !inScope(p.scopeID, scopes) || !p.ActiveAt(now) {
			continue
		}
		price := p.Apply(base)
		if best == nil || better(p, price, best, q.Final) {
			best = p
			q.Final = price
		}
	}
	if best != nil {
		id := best.id
		q.PromotionID = &id
	}
	return q
}

// ResolvePrice is Resolve for a single scope, returning only the final price.
func ResolvePrice(base money.Money, scopeID uuid.UUID, promotions []*Promotion, now time.Time) money.Money {
	return Resolve(base, []uuid.UUID{scopeID}, promotions, now).Final
}

func better(p *Promotion, price money.Money, cur *Promotion, curPrice money.Money) bool {
	if !price.Equal(curPrice) {
		return price.LessThan(curPrice)
	}
	if c := p.validFrom.Compare(cur.validFrom); c != 0 {
		return c < 0
	}
	return bytes.Compare(p.id[:], cur.id[:]) < 0
}

func inScope(id uuid.UUID, scopes []uuid.UUID) bool {
	for _, s := range scopes {
		if s == id {
			return true
		}
	}
	return false
}
