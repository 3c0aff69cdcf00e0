package screener

import (
	"github.com/pfalcke/screener/date"
	"github.com/shopspring/decimal"
)

// OptionQuote is an immutable snapshot of a single contract quote,
// one per contract per chain fetch.
type OptionQuote struct {
	ID     string // contract identifier, e.g. "AMD260116C00100000"
	Strike decimal.Decimal
	Bid    decimal.Decimal
	Ask    decimal.Decimal
}

var two = decimal.NewFromInt(2)

// Mid returns the mid price (bid+ask)/2.
func (q OptionQuote) Mid() decimal.Decimal { return q.Bid.Add(q.Ask).Div(two) }

// valid reports whether the quote carries everything a scan needs.
// Quotes missing an identifier, a strike, or a usable bid/ask pair are
// discarded before enumeration rather than reported as errors.
func (q OptionQuote) valid() bool {
	if q.ID == "" || !q.Strike.IsPositive() {
		return false
	}
	if q.Bid.IsNegative() || !q.Ask.IsPositive() {
		return false
	}
	return !q.Ask.LessThan(q.Bid)
}

// CleanQuotes returns the quotes usable for scanning, dropping the
// invalid ones. The input is not modified.
func CleanQuotes(quotes []OptionQuote) []OptionQuote {
	kept := make([]OptionQuote, 0, len(quotes))
	for _, q := range quotes {
		if q.valid() {
			kept = append(kept, q)
		}
	}
	return kept
}

// OptionChain holds the two quote tables for one underlying and one
// expiration, plus the underlying spot price at fetch time. It is a
// read-only input to the scanner.
type OptionChain struct {
	Underlying string
	Expiration date.Date
	Spot       decimal.Decimal
	Calls      []OptionQuote
	Puts       []OptionQuote
}

// Breakeven is the per-leg breakeven listing of a single contract:
// the underlying price at which buying that leg alone at the ask
// returns exactly zero at expiration.
type Breakeven struct {
	Quote OptionQuote
	At    decimal.Decimal
}

// CallBreakevens lists the breakeven (strike + ask) of every usable call.
func (c *OptionChain) CallBreakevens() []Breakeven {
	return breakevens(c.Calls, func(q OptionQuote) decimal.Decimal { return q.Strike.Add(q.Ask) })
}

// PutBreakevens lists the breakeven (strike - ask) of every usable put.
func (c *OptionChain) PutBreakevens() []Breakeven {
	return breakevens(c.Puts, func(q OptionQuote) decimal.Decimal { return q.Strike.Sub(q.Ask) })
}

func breakevens(quotes []OptionQuote, at func(OptionQuote) decimal.Decimal) []Breakeven {
	cleaned := CleanQuotes(quotes)
	bes := make([]Breakeven, 0, len(cleaned))
	for _, q := range cleaned {
		bes = append(bes, Breakeven{Quote: q, At: at(q)})
	}
	return bes
}
