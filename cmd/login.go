package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/pfalcke/screener/robinhood"
)

type headerFlags []string

func (h *headerFlags) String() string {
	return strings.Join(*h, ", ")
}

func (h *headerFlags) Set(value string) error {
	*h = append(*h, value)
	return nil
}

type rhLoginCmd struct {
	headers headerFlags
	// Deprecated flags for curl compatibility
	curl string
	body string
}

func (*rhLoginCmd) Name() string { return "rh-login" }
func (*rhLoginCmd) Synopsis() string {
	return "stores brokerage session credentials from a curl command"
}
func (*rhLoginCmd) Usage() string {
	return `scs rh-login -H <header1> -H <header2> ...

Stores brokerage session credentials for use by the 'watchlist' command.
This command is designed to be user-friendly by accepting a pasted 'curl'
command structure: log in in a browser, copy an API request as curl, and
paste its headers here. They are saved to a temporary file.
`
}

func (c *rhLoginCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.headers, "H", "Header for the request (can be specified multiple times)")
	// Deprecated flags for curl compatibility
	f.StringVar(&c.curl, "curl", "", "ignored, for curl compatibility")
	f.StringVar(&c.body, "b", "", "ignored, for curl compatibility")
}

func (c *rhLoginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.headers) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one -H flag is required.")
		return subcommands.ExitUsageError
	}

	if err := robinhood.SaveHeaders(c.headers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("✅ Brokerage session credentials successfully stored.")
	return subcommands.ExitSuccess
}
