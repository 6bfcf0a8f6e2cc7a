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

type capitalCmd struct {
	ticker string
}

func (*capitalCmd) Name() string     { return "capital" }
func (*capitalCmd) Synopsis() string { return "display the capital increase history of a company" }
func (*capitalCmd) Usage() string {
	return `bist capital -ticker <ticker>

  Displays the company's capital increases: rights issues, bonus issues
  from reserves and from dividends, with the capital after each one.
`
}

func (c *capitalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Borsa Istanbul ticker, like THYAO")
}

func (c *capitalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	increases, err := isyatirim.NewClient().CapitalIncreases(c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch capital increases: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CapitalIncreasesMarkdown(c.ticker, increases))
	return subcommands.ExitSuccess
}
