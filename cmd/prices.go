package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/borsatools/bist/date"
	"github.com/borsatools/bist/isyatirim"
	"github.com/borsatools/bist/renderer"
	"github.com/google/subcommands"
)

// pricesCmd holds the flags for the 'prices' subcommand.
type pricesCmd struct {
	ticker   string
	from, to string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "display the daily price history of a stock" }
func (*pricesCmd) Usage() string {
	return `bist prices -ticker <ticker> -from <date> [-to <date>]

  Displays the daily closes of a stock, with the USD/TRY rate and the
  dollar close of each day.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Borsa Istanbul ticker, like THYAO")
	f.StringVar(&c.from, "from", "", "Start of the period (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "End of the period (YYYY-MM-DD, defaults to today)")
}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	quotes, err := isyatirim.NewClient().PriceHistory(c.ticker, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch prices: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PricesMarkdown(c.ticker, quotes))
	return subcommands.ExitSuccess
}

// parseRange resolves the -from/-to flag pair shared by the history
// commands. An empty -to means today.
func parseRange(from, to string) (date.Range, error) {
	start, err := date.Parse(from)
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid -from: %w", err)
	}
	end := date.Today()
	if to != "" {
		if end, err = date.Parse(to); err != nil {
			return date.Range{}, fmt.Errorf("invalid -to: %w", err)
		}
	}
	return date.NewRange(start, end)
}
