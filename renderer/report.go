package renderer

import (
	"bytes"
	"fmt"

	"github.com/borsatools/bist"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the summary totals of one simulation run.
func ReportMarkdown(r *bist.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Returns (%s)", r.Config.Ticker, r.Config.Range))
	doc.PlainText(fmt.Sprintf("%s contributions of %s, dividends %s.",
		r.Config.Mode, bist.M(r.Config.Amount, bist.TRY), reinvestLabel(r.Config.Reinvest)))

	doc.Table(reportTable(r))
	return doc.String()
}

func reportTable(r *bist.Report) md.TableSet {
	return md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"", "TRY", "USD"},
		Rows: [][]string{
			{"Invested", r.Invested.String(), r.InvestedUSD.String()},
			{"Final Value", r.Value.String(), r.ValueUSD.String()},
			{"Dividend Income", r.DividendIncome.String(), r.DividendIncomeUSD.String()},
			{"Shares Held", count(r.TotalShares), ""},
			{"Shares From Dividends", count(r.SharesFromDividends), ""},
			{"Leftover Cash", r.Leftover.String(), ""},
		},
	}
}

// ComparisonMarkdown renders a scenario next to its reinvestment
// alternative.
func ComparisonMarkdown(c *bist.Comparison) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	chosen := c.Chosen.Report()
	alt := c.Alternative.Report()

	doc.H1(fmt.Sprintf("%s Returns (%s)", chosen.Config.Ticker, chosen.Config.Range))
	doc.PlainText(fmt.Sprintf("%s contributions of %s.", chosen.Config.Mode, bist.M(chosen.Config.Amount, bist.TRY)))

	doc.H2("Dividends " + reinvestLabel(chosen.Config.Reinvest))
	doc.Table(reportTable(&chosen))

	doc.H2("Dividends " + reinvestLabel(alt.Config.Reinvest))
	doc.Table(reportTable(&alt))

	return doc.String()
}
