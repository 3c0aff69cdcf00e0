package screener

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value, used for the dollar legs of a
// spread (capital at risk, maximum profit). Options scanned here are
// USD contracts, so the currency defaults to USD.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// USD returns a Money in US dollars.
func USD(value decimal.Decimal) Money { return Money{value: value, cur: money.USD} }

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted representation of the money value, e.g. "$410.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string             { return m.cur }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool { return m.value.LessThanOrEqual(n.value) }

// AsFloat returns the value as a float64 for threshold comparisons and scoring.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
