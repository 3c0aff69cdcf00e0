// Package renderer builds markdown reports out of scan results. It
// only formats: all numbers are computed by the screener package.
package renderer

import (
	"fmt"
	"strings"

	"github.com/pfalcke/screener"
)

// SpreadsMarkdown renders the ranked call debit spreads of one chain
// scan as a markdown report.
func SpreadsMarkdown(chain *screener.OptionChain, ranked []screener.RankedSpread) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Call Debit Spreads %s %s\n\n", chain.Underlying, chain.Expiration)
	fmt.Fprintf(&b, "Spot: %s\n\n", chain.Spot.StringFixed(2))

	if len(ranked) == 0 {
		fmt.Fprintln(&b, "No spread meets the configured criteria.")
		return b.String()
	}

	fmt.Fprintln(&b, "| # | Exp | Long | Short | Buy K | Sell K | Debit | Max Loss | Max Profit | Breakeven | To BE | ROI | Score |")
	fmt.Fprintln(&b, "|--:|:---|:---|:---|---:|---:|---:|---:|---:|---:|---:|---:|---:|")
	for i, r := range ranked {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %.2fx | %.2f |\n",
			i+1,
			chain.Expiration,
			r.Long.ID, r.Short.ID,
			r.Long.Strike.StringFixed(2), r.Short.Strike.StringFixed(2),
			r.Debit.StringFixed(2),
			r.MaxLossUSD, r.MaxProfitUSD,
			r.Breakeven.StringFixed(2),
			r.PctToBreakeven.SignedString(),
			r.ROI,
			r.Score,
		)
	}

	fmt.Fprintln(&b)
	for i, r := range ranked {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Summary())
	}
	return b.String()
}
