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

type companiesCmd struct{}

func (*companiesCmd) Name() string     { return "companies" }
func (*companiesCmd) Synopsis() string { return "display the Borsa Istanbul company directory" }
func (*companiesCmd) Usage() string {
	return `bist companies

  Displays every listed company with its ticker and a link to its page on
  the public disclosure platform.
`
}

func (*companiesCmd) SetFlags(f *flag.FlagSet) {}

func (c *companiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	companies, err := kap.NewClient().Companies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch the company directory: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CompaniesMarkdown(companies))
	return subcommands.ExitSuccess
}

type indexesCmd struct {
	name string
}

func (*indexesCmd) Name() string     { return "indexes" }
func (*indexesCmd) Synopsis() string { return "display index memberships" }
func (*indexesCmd) Usage() string {
	return `bist indexes [-name <fragment>]

  Displays every Borsa Istanbul index with its member tickers. Restrict to
  indexes whose name contains the fragment with -name.
`
}

func (c *indexesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Only indexes whose name contains this fragment")
}

func (c *indexesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	indexes, err := kap.NewClient().Indexes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch index lists: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.name != "" {
		fragment := strings.ToUpper(c.name)
		var kept []kap.Index
		for _, ix := range indexes {
			if strings.Contains(strings.ToUpper(ix.Name), fragment) {
				kept = append(kept, ix)
			}
		}
		indexes = kept
	}

	printMarkdown(renderer.IndexesMarkdown(indexes))
	return subcommands.ExitSuccess
}
