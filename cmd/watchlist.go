package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pfalcke/screener"
	"github.com/pfalcke/screener/robinhood"
)

type watchlistCmd struct {
	outFile string
}

func (*watchlistCmd) Name() string     { return "watchlist" }
func (*watchlistCmd) Synopsis() string { return "dump the brokerage watchlists to a file" }
func (*watchlistCmd) Usage() string {
	return `scs watchlist [-o <file>]

  Fetches every watchlist of the logged-in brokerage account and
  writes the union of their symbols as a JSON array. Requires a
  session stored with 'scs rh-login'.
`
}

func (c *watchlistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outFile, "o", "watchlist.json", "Output file")
}

func (c *watchlistCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	watchlist, err := robinhood.Watchlists()
	if errors.Is(err, screener.ErrMalformedTicker) {
		// validation comes with the valid remainder; keep it
		fmt.Fprintf(os.Stderr, "Warning: skipping %v\n", err)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching watchlists: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(watchlist) == 0 {
		fmt.Println("No watchlist symbols found.")
		return subcommands.ExitSuccess
	}
	if err := screener.SaveWatchlist(c.outFile, watchlist); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing watchlist: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %d symbols to %s\n", len(watchlist), c.outFile)
	return subcommands.ExitSuccess
}
