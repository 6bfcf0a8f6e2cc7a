// Package renderer turns domain reports into markdown documents. Each
// renderer takes a fully-resolved value and only formats; nothing here
// fetches or computes.
package renderer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// dec formats a decimal with two fraction digits, the default for prices
// and monetary figures in tables.
func dec(d decimal.Decimal) string { return d.StringFixed(2) }

// percent formats an already-scaled percentage figure.
func percent(d decimal.Decimal) string { return d.StringFixed(2) + "%" }

// signedPercent is percent with an explicit sign, used for changes.
func signedPercent(d decimal.Decimal) string {
	if d.IsNegative() {
		return percent(d)
	}
	return "+" + percent(d)
}

// orNA renders a ratio cell, falling back to "n/a" when the underlying
// figure could not be computed from the published statements.
func orNA(s string, err error) string {
	if err != nil {
		return "n/a"
	}
	return s
}

func count(n int64) string { return fmt.Sprintf("%d", n) }
