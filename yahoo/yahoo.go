// Package yahoo reads daily closes and dividend events from the public
// chart endpoint of the generic finance-data provider, and adapts them to
// the simulation's series contract. Borsa Istanbul tickers are suffixed
// with ".IS"; the USD/TRY rate is itself a chart symbol.
package yahoo

import (
	"fmt"
	"io"
	"net/http"

	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

const chartURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// the endpoint refuses the default Go user agent
const browserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

// USDTRY is the chart symbol of the dollar/lira closing rate.
const USDTRY = "USDTRY=X"

// Client fetches daily chart data.
type Client struct {
	http *http.Client
}

// NewClient returns a ready Client.
func NewClient() *Client { return &Client{http: new(http.Client)} }

// Bar is one daily chart row. Dividend is the gross per-share amount that
// went ex on that day, zero on most days.
type Bar struct {
	Day      date.Date
	Close    decimal.Decimal
	Dividend decimal.Decimal
}

// Symbol translates a Borsa Istanbul ticker to the provider's chart symbol.
// Currency pairs pass through unchanged.
func Symbol(ticker string) string {
	for _, pair := range []string{"USDTRY=X", "EURTRY=X", "GBPTRY=X"} {
		if ticker == pair {
			return ticker
		}
	}
	return ticker + ".IS"
}

// History returns the symbol's daily bars over the range, oldest first.
// Days the chart has no close for are dropped.
func (c *Client) History(ticker string, rng date.Range) ([]Bar, error) {
	symbol := Symbol(ticker)
	// period2 is exclusive, push it past the end day to include it
	addr := fmt.Sprintf("%s%s?interval=1d&period1=%d&period2=%d&events=div",
		chartURL, symbol, rng.From.Unix(), rng.To.Add(1).Unix())

	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s chart: %w", symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("cannot http GET %v chart: %v", symbol, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return parseChart(symbol, body)
}
