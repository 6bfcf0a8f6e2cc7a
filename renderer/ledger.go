package renderer

import (
	"bytes"
	"fmt"

	"github.com/borsatools/bist"
	md "github.com/nao1215/markdown"
)

// LedgerMarkdown renders the full event-by-event ledger of one simulation
// run.
func LedgerMarkdown(l *bist.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Ledger (%s)", l.Config.Ticker, l.Config.Range))
	doc.PlainText(fmt.Sprintf("%s contributions of %s, dividends %s.",
		l.Config.Mode, bist.M(l.Config.Amount, bist.TRY), reinvestLabel(l.Config.Reinvest)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Close", "Contribution", "Dividend/Share", "Bought", "Held", "Leftover", "Value"},
	}
	for _, row := range l.Rows {
		table.Rows = append(table.Rows, []string{
			row.Day.String(),
			dec(row.Close),
			dec(row.Contribution),
			dec(row.NetDividend),
			count(row.SharesBought),
			count(row.SharesHeld),
			dec(row.Leftover),
			dec(row.ValueTRY),
		})
	}
	doc.Table(table)

	return doc.String()
}

func reinvestLabel(reinvest bool) string {
	if reinvest {
		return "reinvested"
	}
	return "kept as cash"
}
