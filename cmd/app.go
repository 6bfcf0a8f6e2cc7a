// Package cmd implements the CLI application reading Borsa Istanbul market
// data and simulating returns.
package cmd

import (
	"fmt"
	"os"

	"github.com/borsatools/bist"
	"github.com/borsatools/bist/isyatirim"
	"github.com/borsatools/bist/yahoo"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// Register the subcommands. A main package calls Register() and then
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&returnsCmd{}, "simulation")

	c.Register(&pricesCmd{}, "market data")
	c.Register(&dividendsCmd{}, "market data")
	c.Register(&reviewCmd{}, "market data")
	c.Register(&foreignCmd{}, "market data")
	c.Register(&capitalCmd{}, "market data")
	c.Register(&metalsCmd{}, "market data")

	c.Register(&disclosuresCmd{}, "disclosures")
	c.Register(&companiesCmd{}, "disclosures")
	c.Register(&indexesCmd{}, "disclosures")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "assistant")
}

// provider resolves the -source flag shared by the commands that fetch
// price series.
func provider(source string) (bist.SeriesProvider, error) {
	switch source {
	case "", "isyatirim":
		return isyatirim.NewProvider(), nil
	case "yahoo":
		return yahoo.NewProvider(), nil
	}
	return nil, fmt.Errorf("unknown source %q (want isyatirim or yahoo)", source)
}

// printMarkdown renders markdown for the terminal, and leaves it as plain
// markdown when stdout is a pipe.
func printMarkdown(content string) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if out, err := glamour.Render(content, "auto"); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(content)
}
