package yahoo

import (
	"fmt"

	"github.com/borsatools/bist"
	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

// Provider implements bist.SeriesProvider over the chart endpoint: the
// ticker's daily closes and dividends joined with the USD/TRY closing rate
// on the days both traded.
type Provider struct {
	client *Client
}

// NewProvider returns a Provider over a fresh Client.
func NewProvider() *Provider { return &Provider{client: NewClient()} }

// Series fetches the ticker and the currency pair over the range and joins
// them by day. A day missing from either side is dropped; the simulation
// needs both a price and a rate on every row.
func (p *Provider) Series(ticker string, rng date.Range) (bist.Series, error) {
	stock, err := p.client.History(ticker, rng)
	if err != nil {
		return nil, err
	}
	fx, err := p.client.History(USDTRY, rng)
	if err != nil {
		return nil, err
	}
	rates := date.History[decimal.Decimal]{}
	for _, bar := range fx {
		rates.Append(bar.Day, bar.Close)
	}

	series := make(bist.Series, 0, len(stock))
	for _, bar := range stock {
		rate, ok := rates.Get(bar.Day)
		if !ok {
			continue
		}
		series = append(series, bist.PricePoint{
			Day:           bar.Day,
			Close:         bar.Close,
			FX:            rate,
			GrossDividend: bar.Dividend,
		})
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("%s over %s: %w", ticker, rng, err)
	}
	return series, nil
}
