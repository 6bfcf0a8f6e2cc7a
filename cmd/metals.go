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

type metalsCmd struct {
	metal string
	from  string
	to    string
}

func (*metalsCmd) Name() string     { return "metals" }
func (*metalsCmd) Synopsis() string { return "display commodity quotes" }
func (*metalsCmd) Usage() string {
	return `bist metals [-metal <code> -from <date> [-to <date>]]

  Without flags, displays the daily snapshot of gold, silver, platinum,
  palladium and brent. With -metal and -from, displays the commodity's
  daily close history instead.
`
}

func (c *metalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.metal, "metal", "", `Commodity code for history, like "XAU/USD" or "BRENT"`)
	f.StringVar(&c.from, "from", "", "Start of the history period (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "End of the history period (YYYY-MM-DD, defaults to today)")
}

func (c *metalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := isyatirim.NewClient()

	if c.metal == "" {
		quotes, err := client.MetalQuotes()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not fetch commodity quotes: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.MetalsMarkdown(quotes))
		return subcommands.ExitSuccess
	}

	metal := isyatirim.Metal(c.metal)
	if !metal.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown commodity %q\n", c.metal)
		return subcommands.ExitUsageError
	}
	rng, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	prices, err := client.MetalHistory(metal, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch commodity history: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.MetalHistoryMarkdown(metal, prices))
	return subcommands.ExitSuccess
}
