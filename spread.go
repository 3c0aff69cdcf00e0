package screener

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Spread is a call debit spread: one long leg and one short leg from
// the same chain side, with Long.Strike < Short.Strike. All derived
// economics are exact decimal values; a Spread is only ever built
// through NewSpread so the identities MaxProfit = Width - Debit and
// Breakeven = Long.Strike + Debit hold by construction.
type Spread struct {
	Long  OptionQuote
	Short OptionQuote

	Debit     decimal.Decimal // Long.Mid - Short.Mid, the net premium paid
	Width     decimal.Decimal // Short.Strike - Long.Strike
	MaxProfit decimal.Decimal // Width - Debit
	Breakeven decimal.Decimal // Long.Strike + Debit
}

// NewSpread values a candidate long/short leg pair. It returns false
// for economically degenerate pairs (non-positive debit or profit,
// typically inverted mid prices). Those are silently excluded from
// candidate sets, not surfaced as errors.
func NewSpread(long, short OptionQuote) (Spread, bool) {
	debit := long.Mid().Sub(short.Mid())
	if !debit.IsPositive() {
		return Spread{}, false
	}
	width := short.Strike.Sub(long.Strike)
	maxProfit := width.Sub(debit)
	if !maxProfit.IsPositive() {
		return Spread{}, false
	}
	return Spread{
		Long:      long,
		Short:     short,
		Debit:     debit,
		Width:     width,
		MaxProfit: maxProfit,
		Breakeven: long.Strike.Add(debit),
	}, true
}

// ROI returns the return multiple MaxProfit/Debit.
func (s Spread) ROI() float64 {
	return s.MaxProfit.Div(s.Debit).InexactFloat64()
}

// PctToBreakeven returns how far (in percent) the underlying must move
// from spot for the spread to break even at expiration. It is negative
// when the breakeven is already below spot.
func (s Spread) PctToBreakeven(spot decimal.Decimal) Percent {
	return Percent(s.Breakeven.Div(spot).Sub(decimal.NewFromInt(1)).InexactFloat64() * 100)
}

// CallCandidates yields every spread candidate formed by choosing a
// long strike and any strictly higher short strike among the chain's
// usable calls. This is a quadratic pairwise scan bounded by chain
// size: at most k(k-1)/2 pairs for k usable calls, which stays trivial
// for chains of typical size (tens of strikes). Pairs are yielded
// unordered and unvalued; most callers feed them to NewSpread.
func (c *OptionChain) CallCandidates() iter.Seq2[OptionQuote, OptionQuote] {
	calls := CleanQuotes(c.Calls)
	return func(yield func(OptionQuote, OptionQuote) bool) {
		for _, long := range calls {
			for _, short := range calls {
				if !short.Strike.GreaterThan(long.Strike) {
					continue
				}
				if !yield(long, short) {
					return
				}
			}
		}
	}
}
