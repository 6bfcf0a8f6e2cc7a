package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/borsatools/bist"
	"github.com/borsatools/bist/date"
	"github.com/borsatools/bist/isyatirim"
	"github.com/borsatools/bist/renderer"
	"github.com/google/subcommands"
)

type reviewCmd struct {
	ticker string
	year   int
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "display the fundamental ratios of a company" }
func (*reviewCmd) Usage() string {
	return `bist review -ticker <ticker>

  Computes the usual ratio set from the company's published financial
  statements: market cap, P/E, P/B, P/S, ROE, ROA, margins, EBITDA, debt
  and liquidity. Ratios the statements cannot answer print as n/a.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Borsa Istanbul ticker, like THYAO")
	f.IntVar(&c.year, "year", 0, "Most recent statement year to read (defaults to the current year)")
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	year := c.year
	if year == 0 {
		year = date.Today().Year()
	}

	client := isyatirim.NewClient()
	statement, err := client.FinancialStatements(c.ticker, year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch statements: %v\n", err)
		return subcommands.ExitFailure
	}

	today := date.Today()
	quotes, err := client.PriceHistory(c.ticker, date.Range{From: today.Add(-14), To: today})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch recent prices: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(quotes) < 2 {
		fmt.Fprintf(os.Stderr, "Error: not enough recent quotes for %s\n", c.ticker)
		return subcommands.ExitFailure
	}
	last, prev := quotes[len(quotes)-1], quotes[len(quotes)-2]

	review := bist.NewReview(c.ticker, statement, last.Close, prev.Close)
	printMarkdown(renderer.ReviewMarkdown(review))
	return subcommands.ExitSuccess
}
