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

type foreignCmd struct {
	ticker   string
	from, to string
}

func (*foreignCmd) Name() string     { return "foreign" }
func (*foreignCmd) Synopsis() string { return "display the change of foreign ownership" }
func (*foreignCmd) Usage() string {
	return `bist foreign -from <date> [-to <date>] [-ticker <ticker>]

  Displays how the foreign ownership ratio of BIST100 stocks changed over
  the period. Restrict to one stock with -ticker.
`
}

func (c *foreignCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Restrict to one ticker (all of BIST100 by default)")
	f.StringVar(&c.from, "from", "", "Start of the period (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "End of the period (YYYY-MM-DD, defaults to today)")
}

func (c *foreignCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ownerships, err := isyatirim.NewClient().ForeignOwnerships(c.ticker, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch foreign ownership: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ForeignMarkdown(ownerships))
	return subcommands.ExitSuccess
}
