package bist

import (
	"errors"
	"fmt"

	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

// ErrInsufficientData is returned when a provider cannot supply enough rows
// to run a meaningful computation (a degenerate single-row answer is how the
// sources signal "nothing obtainable for this ticker/range").
var ErrInsufficientData = errors.New("insufficient price data")

// SeriesProvider supplies, for a ticker and a date range, the merged daily
// series of closing prices, USD/TRY rates and dividend payments.
//
// Implementations live in the provider subpackages; the simulation engine
// only ever sees the returned Series, so tests can substitute a fixed
// in-memory one.
type SeriesProvider interface {
	Series(ticker string, rng date.Range) (Series, error)
}

// PricePoint is one trading day of the merged series.
type PricePoint struct {
	Day           date.Date
	Close         decimal.Decimal // closing price, TRY
	FX            decimal.Decimal // USD/TRY closing rate
	GrossDividend decimal.Decimal // gross dividend per share paid that day, 0 if none
	NetDividend   decimal.Decimal // after withholding, see Withholding
}

// CloseUSD returns the closing price converted at that day's rate.
func (p PricePoint) CloseUSD() decimal.Decimal { return p.Close.Div(p.FX) }

// Price returns the closing price in the requested currency.
func (p PricePoint) Price(c Currency) decimal.Decimal {
	if c == USD {
		return p.CloseUSD()
	}
	return p.Close
}

// HasDividend reports whether a dividend was paid on that day.
func (p PricePoint) HasDividend() bool { return !p.GrossDividend.IsZero() }

// Series is a date-ascending daily series for one ticker.
type Series []PricePoint

// First returns the first point of the series. Undefined on an empty series.
func (s Series) First() PricePoint { return s[0] }

// Last returns the last point of the series. Undefined on an empty series.
func (s Series) Last() PricePoint { return s[len(s)-1] }

// Range returns the date range covered by the series.
func (s Series) Range() date.Range {
	if len(s) == 0 {
		return date.Range{}
	}
	return date.Range{From: s.First().Day, To: s.Last().Day}
}

// Validate checks the contract a provider must honor: at least two rows,
// strictly ascending unique days, positive prices and rates, non-negative
// dividends. The simulation refuses to run on a series that fails here;
// a financial ledger computed over silently-repaired data would be worse
// than no ledger at all.
func (s Series) Validate() error {
	if len(s) < 2 {
		return fmt.Errorf("%w: got %d rows, need at least 2", ErrInsufficientData, len(s))
	}
	for i, p := range s {
		if i > 0 && !s[i-1].Day.Before(p.Day) {
			return fmt.Errorf("series not strictly ascending at %s", p.Day)
		}
		if !p.Close.IsPositive() {
			return fmt.Errorf("non-positive close %s on %s", p.Close, p.Day)
		}
		if !p.FX.IsPositive() {
			return fmt.Errorf("non-positive USD/TRY rate %s on %s", p.FX, p.Day)
		}
		if p.GrossDividend.IsNegative() {
			return fmt.Errorf("negative dividend %s on %s", p.GrossDividend, p.Day)
		}
	}
	return nil
}

// WithNetDividends returns a copy of the series with the NetDividend field
// derived from the withholding policy table. Gross-zero rows stay zero.
func (s Series) WithNetDividends() Series {
	out := make(Series, len(s))
	for i, p := range s {
		p.NetDividend = NetDividend(p.Day, p.GrossDividend)
		out[i] = p
	}
	return out
}
