package isyatirim

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

// Dividend is one historical cash distribution, scraped off the company
// card page.
type Dividend struct {
	Code          string
	Day           date.Date // distribution date
	GrossPerShare decimal.Decimal
	Total         decimal.Decimal // whole distribution, TRY
	PayoutRatio   decimal.Decimal // percent of distributable profit
}

// Dividends returns the company's cash dividend history, oldest first. A
// company that never distributed returns an empty list, that is not an
// error.
//
// There is no JSON endpoint for this table; it only exists as HTML on the
// company card.
func (c *Client) Dividends(ticker string) ([]Dividend, error) {
	body, err := wget(c.http, companyURL+ticker, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching %s company card: %w", ticker, err)
	}
	return parseDividends(ticker, body)
}

func parseDividends(ticker string, body []byte) ([]Dividend, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing %s company card: %w", ticker, err)
	}

	if doc.Find(`table.dataTable.hover.nowrap.excelexport[data-csvname="temettugercek"]`).Length() == 0 {
		return nil, fmt.Errorf("no dividend table on the %s company card, check the ticker", ticker)
	}

	// each row is 8 cells: code, date, total gross, per-share gross, rate,
	// per-share net, total net, payout ratio
	cells := doc.Find("tbody.temettugercekvarBody.gercek tr.temettugercekvarrow td")
	texts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(s.Text()))
	})
	if len(texts)%8 != 0 {
		return nil, fmt.Errorf("dividend table for %s has %d cells, want a multiple of 8", ticker, len(texts))
	}

	dividends := make([]Dividend, 0, len(texts)/8)
	for i := 0; i+8 <= len(texts); i += 8 {
		row := texts[i : i+8]
		day, err := date.ParseLayout("02.01.2006", row[1])
		if err != nil {
			return nil, fmt.Errorf("bad distribution date %q for %s: %w", row[1], ticker, err)
		}
		gross, err := parseTurkishNumber(row[3])
		if err != nil {
			return nil, fmt.Errorf("bad gross dividend %q for %s: %w", row[3], ticker, err)
		}
		total, err := parseTurkishNumber(row[6])
		if err != nil {
			return nil, fmt.Errorf("bad total dividend %q for %s: %w", row[6], ticker, err)
		}
		ratio, err := parseTurkishNumber(row[7])
		if err != nil {
			return nil, fmt.Errorf("bad payout ratio %q for %s: %w", row[7], ticker, err)
		}
		dividends = append(dividends, Dividend{
			Code:          row[0],
			Day:           day,
			GrossPerShare: gross,
			Total:         total,
			PayoutRatio:   ratio,
		})
	}
	sort.Slice(dividends, func(i, j int) bool { return dividends[i].Day.Before(dividends[j].Day) })
	return dividends, nil
}

// parseTurkishNumber reads a number formatted the Turkish way, with dots
// grouping thousands and a comma before the fraction: "1.234,56".
func parseTurkishNumber(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" || s == "-" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
