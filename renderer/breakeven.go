package renderer

import (
	"fmt"
	"strings"

	"github.com/pfalcke/screener"
)

// BreakevensMarkdown renders the per-leg breakeven listing of a chain,
// calls then puts, truncated to the first top rows of each side.
func BreakevensMarkdown(chain *screener.OptionChain, top int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Breakevens %s %s\n\n", chain.Underlying, chain.Expiration)
	breakevenTable(&b, "Calls", chain.CallBreakevens(), top)
	breakevenTable(&b, "Puts", chain.PutBreakevens(), top)
	return b.String()
}

func breakevenTable(b *strings.Builder, title string, bes []screener.Breakeven, top int) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(bes) == 0 {
		fmt.Fprint(b, "No usable quotes.\n\n")
		return
	}
	if top > 0 && len(bes) > top {
		bes = bes[:top]
	}
	fmt.Fprintln(b, "| Contract | Strike | Ask | Breakeven |")
	fmt.Fprintln(b, "|:---|---:|---:|---:|")
	for _, be := range bes {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
			be.Quote.ID, be.Quote.Strike.StringFixed(2), be.Quote.Ask.StringFixed(2), be.At.StringFixed(2))
	}
	fmt.Fprintln(b)
}
