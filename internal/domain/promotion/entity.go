package promotion

import (
	"errors"
	"time"

	"court-slot-engine/internal/domain/calendar"
	"court-slot-engine/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidValidity = errors.New("promotion validFrom must not be after validTo")

// Promotion discounts slots of one scope, a resource or a whole venue, between two dates.
type Promotion struct {
	id        uuid.UUID
	scopeID   uuid.UUID
	discount  Discount
	validFrom calendar.Date
	validTo   calendar.Date
}

func NewPromotion(
	id, scopeID uuid.UUID,
	kind DiscountType,
	value decimal.Decimal,
	validFrom, validTo calendar.Date,
) (*Promotion, error) {
	discount, err := NewDiscount(kind, value)
	if err != nil {
		return nil, err
	}
	if validFrom.After(validTo) {
		return nil, ErrInvalidValidity
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Promotion{
		id:        id,
		scopeID:   scopeID,
		discount:  discount,
		validFrom: validFrom,
		validTo:   validTo,
	}, nil
}

// ActiveAt is true when now's calendar day, in now's location, lies in [validFrom, validTo].
func (p *Promotion) ActiveAt(now time.Time) bool {
	today := calendar.DateOf(now)
	return !today.Before(p.validFrom) && !today.After(p.validTo)
}

func (p *Promotion) Apply(base money.Money) money.Money {
	return p.discount.Apply(base)
}

func (p *Promotion) ID() uuid.UUID            { return p.id }
func (p *Promotion) ScopeID() uuid.UUID       { return p.scopeID }
func (p *Promotion) Discount() Discount       { return p.discount }
func (p *Promotion) ValidFrom() calendar.Date { return p.validFrom }
func (p *Promotion) ValidTo() calendar.Date   { return p.validTo }
