package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")
)

var hundred = decimal.NewFromInt(100)

// Money is an amount in minor currency units. It is never negative.
type Money struct {
	amount int64
}

func New(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func MustNew(amount int64) Money {
	m, err := New(amount)
	if err != nil {
		panic(err)
	}
	return m
}

func Zero() Money { return Money{} }

func (m Money) Amount() int64 { return m.amount }
func (m Money) IsZero() bool  { return m.amount == 0 }

func (m Money) Add(o Money) Money {
	return Money{amount: m.amount + o.amount}
}

// SubFloor subtracts o, flooring the result at zero.
func (m Money) SubFloor(o Money) Money {
	if o.amount >= m.amount {
		return Money{}
	}
	return Money{amount: m.amount - o.amount}
}

// Percent returns floor(m * p / 100).
func (m Money) Percent(p Percentage) Money {
	v := decimal.NewFromInt(m.amount).Mul(p.value).Div(hundred).Floor()
	return Money{amount: v.IntPart()}
}

// PercentOff returns m minus floor(m * p / 100).
func (m Money) PercentOff(p Percentage) Money {
	return m.SubFloor(m.Percent(p))
}

func (m Money) LessThan(o Money) bool { return m.amount < o.amount }
func (m Money) Equal(o Money) bool    { return m.amount == o.amount }

type Percentage struct {
	value decimal.Decimal
}

func NewPercentage(v decimal.Decimal) (Percentage, error) {
	if v.IsNegative() || v.GreaterThan(hundred) {
		return Percentage{}, ErrInvalidPercentage
	}
	return Percentage{value: v}, nil
}

func PercentageFromFloat(f float64) (Percentage, error) {
	return NewPercentage(decimal.NewFromFloat(f))
}

func MustPercentage(f float64) Percentage {
	p, err := PercentageFromFloat(f)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Percentage) Decimal() decimal.Decimal { return p.value }
func (p Percentage) String() string           { return p.value.String() }

func (p Percentage) Float64() float64 {
	f, _ := p.value.Float64()
	return f
}
