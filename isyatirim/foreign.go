package isyatirim

import (
	"fmt"

	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

// ForeignOwnership is the foreign investor share of a stock between two
// settlement dates.
type ForeignOwnership struct {
	Code      string
	Name      string
	Price     decimal.Decimal // current price, TRY
	From      date.Date       // settlement date the start ratio was taken on
	To        date.Date
	StartRate decimal.Decimal // percent held by foreign investors at From
	EndRate   decimal.Decimal
	Change    decimal.Decimal // percent
}

// ForeignOwnerships returns the foreign ownership change of every index
// stock over the range. Settlement data does not exist for every calendar
// day; when the exact range has none, the start date walks forward and the
// end date walks backward until data appears, mirroring how the portal's
// own page behaves. The dates actually used are reported on each row.
func (c *Client) ForeignOwnerships(ticker string, rng date.Range) ([]ForeignOwnership, error) {
	content, from, to, err := c.foreignFetch(ticker, rng.From, rng.To)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		// widen: first slide the whole window forward to find a start...
		days := rng.Days()
		found := false
		for i := 0; i < days; i++ {
			from, to = rng.From.Add(i), rng.From.Add(i)
			if content, from, to, err = c.foreignFetch(ticker, from, to); err != nil {
				return nil, err
			}
			if len(content) > 0 {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no settlement data for %s anywhere in %s", ticker, rng)
		}
		start := from
		// ...then walk the end date back from the requested bound
		for i := 0; i < days; i++ {
			end := rng.To.Add(-i)
			if end.Before(start) {
				break
			}
			if content, from, to, err = c.foreignFetch(ticker, start, end); err != nil {
				return nil, err
			}
			if len(content) > 0 {
				break
			}
		}
		if len(content) == 0 {
			return nil, fmt.Errorf("no settlement data for %s anywhere in %s", ticker, rng)
		}
	}

	out := make([]ForeignOwnership, 0, len(content))
	for _, row := range content {
		out = append(out, ForeignOwnership{
			Code:      row.Code,
			Name:      row.Name,
			Price:     row.Price,
			From:      from,
			To:        to,
			StartRate: row.Start,
			EndRate:   row.End,
			Change:    row.Change,
		})
	}
	return out, nil
}

type foreignRow struct {
	Code   string          `json:"HISSE_KODU"`
	Name   string          `json:"HISSE_TANIM"`
	Price  decimal.Decimal `json:"PRICE_TL"`
	Start  decimal.Decimal `json:"YAB_ORAN_START"`
	End    decimal.Decimal `json:"YAB_ORAN_END"`
	Change decimal.Decimal `json:"DEGISIM"`
}

func (c *Client) foreignFetch(ticker string, from, to date.Date) ([]foreignRow, date.Date, date.Date, error) {
	payload := map[string]interface{}{
		"baslangicTarih": from.Format(queryDateFormat),
		"bitisTarihi":    to.Format(queryDateFormat),
		"sektor":         "",
		"endeks":         "09",
		"hisse":          ticker,
	}
	content := make([]foreignRow, 0)
	if err := jwpost(c.http, foreignURL, payload, &content); err != nil {
		return nil, from, to, fmt.Errorf("fetching %s foreign ownership: %w", ticker, err)
	}
	return content, from, to, nil
}
