package isyatirim

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

// Metal identifies a quoted commodity on the portal's chart endpoints.
type Metal string

const (
	Gold      Metal = "XAU/USD"
	Silver    Metal = "XAG/USD"
	Platinum  Metal = "XPT/USD"
	Palladium Metal = "XPD/USD"
	Brent     Metal = "BRENT"
)

// Metals lists every quoted commodity.
var Metals = []Metal{Gold, Silver, Platinum, Palladium, Brent}

// Valid reports whether the symbol is one the portal quotes.
func (m Metal) Valid() bool {
	for _, known := range Metals {
		if m == known {
			return true
		}
	}
	return false
}

// MetalPrice is one daily USD close of a commodity.
type MetalPrice struct {
	Day   date.Date
	Close decimal.Decimal
}

// MetalHistory returns the commodity's daily USD closes over the range,
// oldest first.
func (c *Client) MetalHistory(metal Metal, rng date.Range) ([]MetalPrice, error) {
	if !metal.Valid() {
		return nil, fmt.Errorf("unknown commodity %q", metal)
	}
	// {"data": [[1704153600000, 2063.7], [1704240000000, 2041.4], ...]}
	// each pair is a millisecond timestamp and the close of that bar;
	// period 1440 selects daily bars.
	params := url.Values{}
	params.Set("period", "1440")
	params.Set("endeks", string(metal))
	params.Set("from", rng.From.Format("20060102")+"000000")
	params.Set("to", rng.To.Format("20060102")+"235959")

	content := make([][2]json.Number, 0)
	if err := jwget(c.http, metalsHistoryURL, params, &content); err != nil {
		return nil, fmt.Errorf("fetching %s history: %w", metal, err)
	}

	prices := make([]MetalPrice, 0, len(content))
	for _, bar := range content {
		ms, err := bar[0].Int64()
		if err != nil {
			return nil, fmt.Errorf("bad %s bar timestamp %q: %w", metal, bar[0], err)
		}
		close, err := decimal.NewFromString(bar[1].String())
		if err != nil {
			return nil, fmt.Errorf("bad %s close %q: %w", metal, bar[1], err)
		}
		prices = append(prices, MetalPrice{Day: date.FromUnix(ms / 1000), Close: close})
	}
	return prices, nil
}

// MetalQuote is the current-day state of a commodity.
type MetalQuote struct {
	Code          Metal           `json:"c"`
	Description   string          `json:"description"`
	Last          decimal.Decimal `json:"last"`
	PreviousClose decimal.Decimal `json:"previousDayClose"`
	Change        decimal.Decimal `json:"dailyChange"`
	ChangePct     decimal.Decimal `json:"dailyChangePercentage"`
}

// MetalQuotes returns the current daily quote of each requested commodity.
func (c *Client) MetalQuotes(metals ...Metal) ([]MetalQuote, error) {
	if len(metals) == 0 {
		metals = Metals
	}
	quotes := make([]MetalQuote, 0, len(metals))
	for _, metal := range metals {
		if !metal.Valid() {
			return nil, fmt.Errorf("unknown commodity %q", metal)
		}
		params := url.Values{}
		params.Set("endeks", string(metal))

		content := make([]MetalQuote, 0)
		if err := jwget(c.http, metalsDailyURL, params, &content); err != nil {
			return nil, fmt.Errorf("fetching %s quote: %w", metal, err)
		}
		quotes = append(quotes, content...)
	}
	return quotes, nil
}
