package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pfalcke/screener"
	"github.com/pfalcke/screener/date"
	"github.com/pfalcke/screener/renderer"
)

type breakevenCmd struct {
	symbol     string
	expiration string
	top        int
}

func (*breakevenCmd) Name() string     { return "breakeven" }
func (*breakevenCmd) Synopsis() string { return "list per-leg breakevens of an option chain" }
func (*breakevenCmd) Usage() string {
	return `scs breakeven -symbol <ticker> -expiration <date> [-top <n>]

  Prints the breakeven price of every call (strike + ask) and put
  (strike - ask) in the chain, head rows of each side.
`
}

func (c *breakevenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Underlying ticker symbol (required)")
	f.StringVar(&c.expiration, "expiration", "", "Expiration date (YYYY-MM-DD). Empty lists the available ones.")
	f.IntVar(&c.top, "top", 15, "Number of legs to print per side")
}

func (c *breakevenCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.BreakevensMarkdown(chain, c.top))
	return subcommands.ExitSuccess
}
