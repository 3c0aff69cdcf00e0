package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pfalcke/screener"
	"github.com/pfalcke/screener/date"
	"github.com/pfalcke/screener/renderer"
)

// spreadsCmd holds the flags for the 'spreads' subcommand.
type spreadsCmd struct {
	symbol     string
	expiration string

	maxPct       float64
	maxLoss      float64
	minProfit    float64
	minROI       float64
	maxDebitFrac float64
	penalty      float64
	top          int
}

func (*spreadsCmd) Name() string     { return "spreads" }
func (*spreadsCmd) Synopsis() string { return "scan call debit spreads with favorable risk/reward" }
func (*spreadsCmd) Usage() string {
	return `scs spreads -symbol <ticker> [-expiration <date>] [thresholds]

  Fetches the option chain for one expiration, enumerates every call
  debit spread, keeps those passing the configured thresholds, and
  prints them ranked by score. Without -expiration, lists the
  available expiration dates and exits.

Usage Examples:
# list expirations
$ scs spreads -symbol AMD
# scan one expiration with a $500 risk cap
$ scs spreads -symbol AMD -expiration 2026-01-16 -max-loss 500
`
}

func (c *spreadsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Underlying ticker symbol (required)")
	f.StringVar(&c.expiration, "expiration", "", "Expiration date to scan (YYYY-MM-DD). Empty lists the available ones.")
	f.Float64Var(&c.maxPct, "max-pct", cfgFloat("spreads.max_pct_to_breakeven", 0), "Max percent move to breakeven, 0 to disable")
	f.Float64Var(&c.maxLoss, "max-loss", cfgFloat("spreads.max_loss_dollars", 0), "Max capital at risk per spread in dollars, 0 to disable")
	f.Float64Var(&c.minProfit, "min-profit", cfgFloat("spreads.min_profit_dollars", 0), "Min max-profit per spread in dollars, 0 to disable")
	f.Float64Var(&c.minROI, "min-roi", cfgFloat("spreads.min_roi", 0), "Min return multiple max-profit/debit, 0 to disable")
	f.Float64Var(&c.maxDebitFrac, "max-debit-frac", cfgFloat("spreads.max_debit_frac", 0), "Max debit as a fraction of spot (e.g. 0.05), 0 to disable")
	f.Float64Var(&c.penalty, "penalty", cfgFloat("spreads.penalty_weight", 0.08), "Score penalty per percent to breakeven")
	f.IntVar(&c.top, "top", cfgInt("spreads.top", 15), "Number of ranked spreads to keep")
}

func (c *spreadsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "-symbol is required")
		return subcommands.ExitUsageError
	}
	provider := screener.NewYahooProvider()

	if c.expiration == "" {
		return listExpirations(provider, c.symbol)
	}
	expiration, err := date.Parse(c.expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing expiration: %v\n", err)
		return subcommands.ExitUsageError
	}

	chain, err := provider.Chain(c.symbol, expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching chain: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg := screener.DefaultScanConfig()
	cfg.MaxPctToBreakeven = c.maxPct
	cfg.MaxLossDollars = c.maxLoss
	cfg.MinProfitDollars = c.minProfit
	cfg.MinROI = c.minROI
	cfg.MaxDebitFracOfSpot = c.maxDebitFrac
	cfg.PenaltyWeight = c.penalty
	cfg.TopN = c.top

	ranked := screener.ScanCallDebitSpreads(chain, cfg)
	printMarkdown(renderer.SpreadsMarkdown(chain, ranked))
	return subcommands.ExitSuccess
}

// listExpirations prints the expirations available for the symbol.
// Having none to list is a reportable no-data outcome, not a crash.
func listExpirations(provider screener.ChainProvider, symbol string) subcommands.ExitStatus {
	expirations, err := provider.Expirations(symbol)
	if errors.Is(err, screener.ErrNoData) {
		fmt.Printf("No option expirations for %s.\n", symbol)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching expirations: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Expirations for %s:\n", symbol)
	for _, e := range expirations {
		fmt.Println(" ", e)
	}
	return subcommands.ExitSuccess
}
