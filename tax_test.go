package bist

import (
	"testing"
	"time"

	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

func TestNetDividend(t *testing.T) {
	gross := decimal.NewFromInt(100)
	testCases := []struct {
		name string
		day  date.Date
		want string
	}{
		{"well before the change", date.New(2015, time.May, 4), "85"},
		{"last day of the old rate", date.New(2021, time.December, 22), "85"},
		{"first day of the new rate", date.New(2021, time.December, 23), "90"},
		{"well after the change", date.New(2024, time.March, 15), "90"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NetDividend(tc.day, gross)
			if want := decimal.RequireFromString(tc.want); !got.Equal(want) {
				t.Errorf("NetDividend(%s, 100) = %s, want %s", tc.day, got, want)
			}
		})
	}
}

func TestNetDividend_ZeroPassesThrough(t *testing.T) {
	got := NetDividend(date.New(2024, time.March, 15), decimal.Zero)
	if !got.IsZero() {
		t.Errorf("NetDividend(zero gross) = %s, want 0", got)
	}
}

func TestWithholdingRate(t *testing.T) {
	if got := WithholdingRate(date.New(2021, time.December, 22)); !got.Equal(decimal.NewFromFloat(0.15)) {
		t.Errorf("rate on 2021-12-22 = %s, want 0.15", got)
	}
	if got := WithholdingRate(date.New(2021, time.December, 23)); !got.Equal(decimal.NewFromFloat(0.10)) {
		t.Errorf("rate on 2021-12-23 = %s, want 0.1", got)
	}
}
