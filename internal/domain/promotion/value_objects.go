package promotion

import (
	"errors"
	"math"

	"court-slot-engine/internal/domain/money"

	"github.com/shopspring/decimal"
)

var maxFixedDiscount = decimal.NewFromInt(math.MaxInt64)

var (
	ErrInvalidDiscountType    = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrDiscountTooLarge       = errors.New("fixed discount amount is too large")
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (t DiscountType) String() string {
	return string(t)
}

func (t DiscountType) IsValid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

type Discount struct {
	kind    DiscountType
	percent money.Percentage
	amount  money.Money
}

func NewDiscount(kind DiscountType, value decimal.Decimal) (Discount, error) {
	switch kind {
	case DiscountPercentage:
		p, err := money.NewPercentage(value)
		if err != nil {
			return Discount{}, ErrInvalidDiscountPercent
		}
		return Discount{kind: kind, percent: p}, nil
	case DiscountFixed:
		if value.IsNegative() {
			return Discount{}, ErrInvalidDiscountAmount
		}
		if value.GreaterThan(maxFixedDiscount) {
			return Discount{}, ErrDiscountTooLarge
		}
		amount, err := money.New(value.Floor().IntPart())
		if err != nil {
			return Discount{}, ErrInvalidDiscountAmount
		}
		return Discount{kind: kind, amount: amount}, nil
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Type() DiscountType { return d.kind }

// Value returns the percentage or the fixed amount as a decimal.
func (d Discount) Value() decimal.Decimal {
	if d.kind == DiscountPercentage {
		return d.percent.Decimal()
	}
	return decimal.NewFromInt(d.amount.Amount())
}

// Apply returns the discounted price, never below zero.
func (d Discount) Apply(base money.Money) money.Money {
	if d.kind == DiscountPercentage {
		return base.PercentOff(d.percent)
	}
	return base.SubFloor(d.amount)
}
