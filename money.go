package bist

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency selects which side of the dual-currency series a figure is read
// from. It replaces the original system's column-name dispatch with a fixed
// accessor (see PricePoint.Price).
type Currency int

const (
	// TRY is the local trading currency of Borsa Istanbul.
	TRY Currency = iota
	// USD is the reference currency, derived via the USD/TRY close rate.
	USD
)

func (c Currency) String() string {
	if c == USD {
		return "USD"
	}
	return "TRY"
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   Currency
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency Currency) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's full currency definition.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur.String()).Currency()
}

// String returns the string representation of the money value,
// formatted with the currency's own grapheme and fraction rules.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Amount returns the raw decimal value in major units.
func (m Money) Amount() decimal.Decimal { return m.value }

func (m Money) Currency() Currency     { return m.cur }
func (m Money) Equal(n Money) bool     { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) IsPositive() bool       { return m.value.IsPositive() }
func (m Money) IsNegative() bool       { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool  { return m.value.LessThan(n.value) }
func (m Money) Add(n Money) Money      { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money      { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) MulInt(n int64) Money   { return Money{value: m.value.Mul(decimal.NewFromInt(n)), cur: m.cur} }
func (m Money) Div(d decimal.Decimal) Money {
	return Money{value: m.value.Div(d), cur: m.cur}
}

// cur resolves the currency of a binary operation. A zero Money carries no
// meaningful currency, so it is weak against the other operand.
func cur(a, b Money) Currency {
	if a.value.IsZero() {
		return b.cur
	}
	if b.value.IsZero() {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur.String() + "!=" + b.cur.String())
	}
	return a.cur
}
