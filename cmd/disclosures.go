package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/borsatools/bist/kap"
	"github.com/borsatools/bist/renderer"
	"github.com/google/subcommands"
)

type disclosuresCmd struct {
	days   int
	kind   string
	ticker string
}

func (*disclosuresCmd) Name() string     { return "disclosures" }
func (*disclosuresCmd) Synopsis() string { return "display recent public disclosures" }
func (*disclosuresCmd) Usage() string {
	return `bist disclosures [-days <n>] [-type <type>] [-ticker <ticker>]

  Displays the public filings of listed companies, newest first, with a
  link to each one. Types: ALL, FR (financial reports), ODA (material
  events), DUY (announcements), DG (regulator statements).
`
}

func (c *disclosuresCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 7, "How many days back to look, at most 180")
	f.StringVar(&c.kind, "type", kap.All, "Disclosure type to show")
	f.StringVar(&c.ticker, "ticker", "", "Only filings naming this ticker")
}

func (c *disclosuresCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	disclosures, err := kap.NewClient().Disclosures(c.days, c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch disclosures: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.ticker != "" {
		var kept []kap.Disclosure
		for _, d := range disclosures {
			if strings.Contains(d.Stocks, strings.ToUpper(c.ticker)) {
				kept = append(kept, d)
			}
		}
		disclosures = kept
	}

	printMarkdown(renderer.DisclosuresMarkdown(disclosures))
	return subcommands.ExitSuccess
}
