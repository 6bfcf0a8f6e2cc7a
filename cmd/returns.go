package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/borsatools/bist"
	"github.com/borsatools/bist/date"
	"github.com/borsatools/bist/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// returnsCmd holds the flags for the 'returns' subcommand.
type returnsCmd struct {
	ticker        string
	from, to      string
	amount        string
	mode          string
	reinvest      bool
	transactFinal bool
	compare       bool
	ledger        bool
	source        string
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "simulate a contribution plan into one stock" }
func (*returnsCmd) Usage() string {
	return `bist returns -ticker <ticker> -from <date> -to <date> -amount <TRY> [-mode periodic] [-reinvest] [-compare] [-ledger]

  Replays a contribution plan over the stock's price history and reports the
  outcome in lira and dollars.

Usage Examples:
$ bist returns -ticker THYAO -from 2020-01-01 -to 2024-12-31 -amount 5000 -mode periodic -reinvest

`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Borsa Istanbul ticker, like THYAO")
	f.StringVar(&c.from, "from", "", "Start of the period (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "End of the period (YYYY-MM-DD, defaults to today)")
	f.StringVar(&c.amount, "amount", "", "Contribution amount in TRY, per event")
	f.StringVar(&c.mode, "mode", "lump-sum", "Contribution mode: lump-sum or periodic")
	f.BoolVar(&c.reinvest, "reinvest", false, "Reinvest net dividends on their payment day")
	f.BoolVar(&c.transactFinal, "transact-final", false, "Let the last event of the plan transact instead of only valuing")
	f.BoolVar(&c.compare, "compare", false, "Also run the plan with the reinvestment choice flipped")
	f.BoolVar(&c.ledger, "ledger", false, "Print the full event ledger instead of the summary")
	f.StringVar(&c.source, "source", "isyatirim", "Price source: isyatirim or yahoo")
}

func (c *returnsCmd) config() (bist.SimulationConfig, error) {
	var cfg bist.SimulationConfig

	from, err := date.Parse(c.from)
	if err != nil {
		return cfg, fmt.Errorf("invalid -from: %w", err)
	}
	to := date.Today()
	if c.to != "" {
		if to, err = date.Parse(c.to); err != nil {
			return cfg, fmt.Errorf("invalid -to: %w", err)
		}
	}
	rng, err := date.NewRange(from, to)
	if err != nil {
		return cfg, err
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return cfg, fmt.Errorf("invalid -amount: %w", err)
	}
	mode, err := bist.ParseMode(c.mode)
	if err != nil {
		return cfg, err
	}

	cfg.Ticker = c.ticker
	cfg.Range = rng
	cfg.Mode = mode
	cfg.Reinvest = c.reinvest
	cfg.Amount = amount
	cfg.TransactOnFinal = c.transactFinal
	return cfg, nil
}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := provider(c.source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	series, err := p.Series(cfg.Ticker, cfg.Range)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch the price series: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.compare {
		comparison, err := bist.Compare(cfg, series)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.ComparisonMarkdown(comparison))
		return subcommands.ExitSuccess
	}

	ledger, err := bist.Simulate(cfg, series)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.ledger {
		printMarkdown(renderer.LedgerMarkdown(ledger))
	} else {
		report := ledger.Report()
		printMarkdown(renderer.ReportMarkdown(&report))
	}
	return subcommands.ExitSuccess
}
