package isyatirim

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/borsatools/bist"
	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

// Quote is one day of the portal's price history for a ticker.
type Quote struct {
	Day        date.Date
	Code       string
	Close      decimal.Decimal // TRY
	Low        decimal.Decimal
	High       decimal.Decimal
	Index      decimal.Decimal // BIST100 closing value that day
	IndexBased decimal.Decimal // price relative to the BIST100
	USDTRY     decimal.Decimal // dollar closing rate that day
	CloseUSD   decimal.Decimal
	Volume     decimal.Decimal // TRY
}

// PriceHistory returns the daily quotes for a ticker over the range, oldest
// first.
func (c *Client) PriceHistory(ticker string, rng date.Range) ([]Quote, error) {
	// {"value": [
	//   {
	//     "HGDG_HS_KODU": "THYAO",
	//     "HGDG_TARIH": "02-01-2024",
	//     "HGDG_KAPANIS": 250.25,
	//     "HGDG_MIN": 247.0, "HGDG_MAX": 252.5,
	//     "END_DEGER": 7470.18,
	//     "DD_DEGER": 29.8,
	//     "DOLAR_BAZLI_FIYAT": 8.39,
	//     "ENDEKS_BAZLI_FIYAT": 33.5,
	//     "HG_HACIM": 1200000.0, ...
	//   }, ...
	// ]}
	type info struct {
		Code       string          `json:"HGDG_HS_KODU"`
		Day        string          `json:"HGDG_TARIH"`
		Close      decimal.Decimal `json:"HGDG_KAPANIS"`
		Low        decimal.Decimal `json:"HGDG_MIN"`
		High       decimal.Decimal `json:"HGDG_MAX"`
		Index      decimal.Decimal `json:"END_DEGER"`
		USDTRY     decimal.Decimal `json:"DD_DEGER"`
		CloseUSD   decimal.Decimal `json:"DOLAR_BAZLI_FIYAT"`
		IndexBased decimal.Decimal `json:"ENDEKS_BAZLI_FIYAT"`
		Volume     decimal.Decimal `json:"HG_HACIM"`
	}

	params := url.Values{}
	params.Set("hisse", ticker)
	params.Set("startdate", rng.From.Format(queryDateFormat))
	params.Set("enddate", rng.To.Format(queryDateFormat))

	content := make([]info, 0)
	if err := jwget(c.http, priceURL, params, &content); err != nil {
		return nil, fmt.Errorf("fetching %s price history: %w", ticker, err)
	}

	quotes := make([]Quote, 0, len(content))
	for _, row := range content {
		day, err := date.ParseLayout(queryDateFormat, row.Day)
		if err != nil {
			return nil, fmt.Errorf("bad trading day %q for %s: %w", row.Day, ticker, err)
		}
		quotes = append(quotes, Quote{
			Day:        day,
			Code:       row.Code,
			Close:      row.Close,
			Low:        row.Low,
			High:       row.High,
			Index:      row.Index,
			IndexBased: row.IndexBased,
			USDTRY:     row.USDTRY,
			CloseUSD:   row.CloseUSD,
			Volume:     row.Volume,
		})
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].Day.Before(quotes[j].Day) })
	return quotes, nil
}

// Provider adapts the portal's price history to the simulation's series
// contract, joining dividend payments from the company card onto the daily
// quotes by distribution date.
type Provider struct {
	client *Client
}

// NewProvider returns a Provider over a fresh Client.
func NewProvider() *Provider { return &Provider{client: NewClient()} }

// Series implements bist.SeriesProvider.
func (p *Provider) Series(ticker string, rng date.Range) (bist.Series, error) {
	quotes, err := p.client.PriceHistory(ticker, rng)
	if err != nil {
		return nil, err
	}
	dividends, err := p.client.Dividends(ticker)
	if err != nil {
		return nil, err
	}
	paid := date.History[decimal.Decimal]{}
	for _, d := range dividends {
		paid.Append(d.Day, d.GrossPerShare)
	}

	series := make(bist.Series, 0, len(quotes))
	for _, q := range quotes {
		point := bist.PricePoint{Day: q.Day, Close: q.Close, FX: q.USDTRY}
		if gross, ok := paid.Get(q.Day); ok {
			point.GrossDividend = gross
		}
		series = append(series, point)
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}
	return series, nil
}
