package renderer

import (
	"bytes"
	"fmt"

	"github.com/borsatools/bist/isyatirim"
	md "github.com/nao1215/markdown"
)

// PricesMarkdown renders the daily quote history of one stock.
func PricesMarkdown(ticker string, quotes []isyatirim.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Prices", ticker))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Close", "Low", "High", "USD/TRY", "Close USD"},
	}
	for _, q := range quotes {
		table.Rows = append(table.Rows, []string{
			q.Day.String(),
			dec(q.Close),
			dec(q.Low),
			dec(q.High),
			q.USDTRY.StringFixed(4),
			dec(q.CloseUSD),
		})
	}
	doc.Table(table)

	return doc.String()
}

// CapitalIncreasesMarkdown renders the capital increase history of one
// company.
func CapitalIncreasesMarkdown(ticker string, increases []isyatirim.CapitalIncrease) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Capital Increases", ticker))
	if len(increases) == 0 {
		doc.PlainText("No capital increase on record.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Capital After", "Rights", "Bonus", "From Dividends"},
	}
	for _, ci := range increases {
		day := "unannounced"
		if !ci.Day.IsZero() {
			day = ci.Day.String()
		}
		table.Rows = append(table.Rows, []string{
			day,
			dec(ci.AfterSplit),
			percent(ci.RightsRatio),
			percent(ci.BonusRatio),
			percent(ci.BonusFromDiv),
		})
	}
	doc.Table(table)

	return doc.String()
}

// MetalHistoryMarkdown renders the daily close history of one commodity.
func MetalHistoryMarkdown(metal isyatirim.Metal, prices []isyatirim.MetalPrice) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s History", metal))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Close"},
	}
	for _, p := range prices {
		table.Rows = append(table.Rows, []string{p.Day.String(), dec(p.Close)})
	}
	doc.Table(table)

	return doc.String()
}

// DividendsMarkdown renders the cash dividend history of one company.
func DividendsMarkdown(ticker string, dividends []isyatirim.Dividend) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Dividends", ticker))
	if len(dividends) == 0 {
		doc.PlainText("No cash dividend on record.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Gross/Share", "Total Net", "Payout"},
	}
	for _, d := range dividends {
		table.Rows = append(table.Rows, []string{
			d.Day.String(),
			d.GrossPerShare.String(),
			dec(d.Total),
			percent(d.PayoutRatio),
		})
	}
	doc.Table(table)

	return doc.String()
}

// MetalsMarkdown renders the daily commodity snapshot.
func MetalsMarkdown(quotes []isyatirim.MetalQuote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Commodities")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Instrument", "Last", "Prev. Close", "Change"},
	}
	for _, q := range quotes {
		table.Rows = append(table.Rows, []string{
			q.Description,
			dec(q.Last),
			dec(q.PreviousClose),
			signedPercent(q.ChangePct),
		})
	}
	doc.Table(table)

	return doc.String()
}

// ForeignMarkdown renders the change of foreign ownership over a period.
func ForeignMarkdown(ownerships []isyatirim.ForeignOwnership) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Foreign Ownership")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Ticker", "Price", "Start", "End", "Change"},
	}
	for _, o := range ownerships {
		table.Rows = append(table.Rows, []string{
			o.Code,
			dec(o.Price),
			percent(o.StartRate),
			percent(o.EndRate),
			signedPercent(o.Change),
		})
	}
	doc.Table(table)

	return doc.String()
}
