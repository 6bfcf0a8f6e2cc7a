package bist

import (
	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
	"time"
)

// Dividend withholding in Turkey is a flat rate that changed over time.
// The policy is kept as an ordered table of effective dates so that a future
// rate change is a data edit, not a code change.

// withholdingRate is one row of the policy table: the rate applies to
// dividends paid strictly after From.
type withholdingRate struct {
	From date.Date // exclusive lower bound
	Rate decimal.Decimal
}

// withholdingPolicy is ordered by From ascending. The zero date row is the
// base rate applying to everything before the first change.
var withholdingPolicy = []withholdingRate{
	{From: date.Date{}, Rate: decimal.NewFromFloat(0.15)},
	// Lowered from 15% to 10% with effect after 22 December 2021.
	{From: date.New(2021, time.December, 22), Rate: decimal.NewFromFloat(0.10)},
}

// WithholdingRate returns the dividend withholding rate in force for a
// payment made on the given day.
func WithholdingRate(on date.Date) decimal.Decimal {
	rate := withholdingPolicy[0].Rate
	for _, row := range withholdingPolicy[1:] {
		if on.After(row.From) {
			rate = row.Rate
		}
	}
	return rate
}

// NetDividend applies the withholding in force on the payment day to a gross
// per-share dividend amount.
func NetDividend(on date.Date, gross decimal.Decimal) decimal.Decimal {
	if gross.IsZero() {
		return gross
	}
	return gross.Mul(decimal.NewFromInt(1).Sub(WithholdingRate(on)))
}
