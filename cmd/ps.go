package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/pfalcke/screener"
	"github.com/pfalcke/screener/renderer"
)

// psCmd holds the flags for the 'ps' subcommand.
type psCmd struct {
	dataFile      string
	watchlistFile string
	outFile       string
	top           int
}

func (*psCmd) Name() string { return "ps" }
func (*psCmd) Synopsis() string {
	return "detect stocks trading at an unusual price-to-sales ratio versus their own history"
}
func (*psCmd) Usage() string {
	return `scs ps -data <shareprices.csv> [-watchlist <file>] [-o <file>] [-top <n>]

  Loads the daily shareprices dataset once, computes price-to-sales
  statistics and a z-score of the latest observation for every
  watchlist ticker, writes the full report to a CSV sorted by z-score,
  and prints the top of the table.

Usage Examples:
$ scs ps -data ~/simfin_data/us-derived-shareprices-daily.csv -watchlist watchlist.json
`
}

func (c *psCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dataFile, "data", "", "Path to the daily shareprices dataset, semicolon separated (required)")
	f.StringVar(&c.watchlistFile, "watchlist", "watchlist.json", "Watchlist file of tickers to scan")
	f.StringVar(&c.outFile, "o", "ps_ratio.csv", "Report output file")
	f.IntVar(&c.top, "top", cfgInt("ps.top", 20), "Number of rows to print")
}

func (c *psCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.dataFile == "" {
		fmt.Fprintln(os.Stderr, "-data is required")
		return subcommands.ExitUsageError
	}

	watchlist, err := screener.LoadWatchlist(c.watchlistFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading watchlist: %v\n", err)
		return subcommands.ExitFailure
	}

	log.Printf("loading dataset %s (once per run)", c.dataFile)
	dataset, err := screener.LoadShareprices(c.dataFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Printf("loaded %d tickers", dataset.Len())

	reports := screener.ScanAnomalies(dataset, watchlist)
	if err := screener.SaveAnomalyCSV(c.outFile, reports); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Report written to %s\n", c.outFile)

	printMarkdown(renderer.AnomaliesMarkdown(reports, c.top))
	return subcommands.ExitSuccess
}
