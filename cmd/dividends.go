package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/borsatools/bist/isyatirim"
	"github.com/borsatools/bist/renderer"
	"github.com/google/subcommands"
)

type dividendsCmd struct {
	ticker string
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "display the cash dividend history of a company" }
func (*dividendsCmd) Usage() string {
	return `bist dividends -ticker <ticker>

  Displays the company's cash dividends, oldest first: distribution date,
  gross amount per share, total net distribution and payout ratio.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Borsa Istanbul ticker, like THYAO")
}

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dividends, err := isyatirim.NewClient().Dividends(c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch dividends: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DividendsMarkdown(c.ticker, dividends))
	return subcommands.ExitSuccess
}
