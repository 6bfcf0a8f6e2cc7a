package renderer

import (
	"strings"
	"testing"

	"github.com/borsatools/bist"
	"github.com/borsatools/bist/date"
	"github.com/borsatools/bist/isyatirim"
	"github.com/borsatools/bist/kap"
	"github.com/shopspring/decimal"
)

func fixtureLedger(t *testing.T) *bist.Ledger {
	t.Helper()
	series := bist.Series{
		{Day: date.New(2024, 1, 2), Close: decimal.NewFromInt(100), FX: decimal.NewFromInt(30)},
		{Day: date.New(2024, 6, 28), Close: decimal.NewFromInt(120), FX: decimal.NewFromInt(32)},
	}
	cfg := bist.SimulationConfig{
		Ticker: "THYAO",
		Range:  date.Range{From: date.New(2024, 1, 1), To: date.New(2024, 6, 30)},
		Mode:   bist.LumpSum,
		Amount: decimal.NewFromInt(10000),
	}
	l, err := bist.Simulate(cfg, series)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	return l
}

func TestLedgerMarkdown(t *testing.T) {
	got := LedgerMarkdown(fixtureLedger(t))
	for _, want := range []string{"# THYAO Ledger", "| Date", "2024-01-02", "| 12000.00 |"} {
		if !strings.Contains(got, want) {
			t.Errorf("LedgerMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestReportMarkdown(t *testing.T) {
	report := fixtureLedger(t).Report()
	got := ReportMarkdown(&report)
	for _, want := range []string{"# THYAO Returns", "Invested", "Final Value", "lump-sum"} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestComparisonMarkdown(t *testing.T) {
	l := fixtureLedger(t)
	got := ComparisonMarkdown(&bist.Comparison{Chosen: l, Alternative: l})
	if !strings.Contains(got, "## Dividends kept as cash") {
		t.Errorf("ComparisonMarkdown() missing the alternative section in:\n%s", got)
	}
}

func TestReviewMarkdown(t *testing.T) {
	// An empty statement still renders, with every ratio as n/a.
	review := bist.NewReview("THYAO", bist.NewStatement("THYAO", nil), decimal.NewFromInt(20), decimal.Zero)
	got := ReviewMarkdown(review)
	for _, want := range []string{"# THYAO Review", "## Valuation", "## Profitability", "n/a"} {
		if !strings.Contains(got, want) {
			t.Errorf("ReviewMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestDisclosuresMarkdown(t *testing.T) {
	got := DisclosuresMarkdown([]kap.Disclosure{{
		Index:   1401822,
		Company: "TÜRK HAVA YOLLARI A.O.",
		Stocks:  "THYAO",
		Title:   "Finansal Rapor",
		Day:     date.New(2026, 8, 28),
	}})
	if !strings.Contains(got, "https://www.kap.org.tr/tr/Bildirim/1401822") {
		t.Errorf("DisclosuresMarkdown() missing the filing link in:\n%s", got)
	}

	if got := DisclosuresMarkdown(nil); !strings.Contains(got, "No disclosure") {
		t.Errorf("DisclosuresMarkdown(nil) = %q, want the empty notice", got)
	}
}

func TestDividendsMarkdown(t *testing.T) {
	got := DividendsMarkdown("THYAO", []isyatirim.Dividend{{
		Code:          "THYAO",
		Day:           date.New(2024, 6, 5),
		GrossPerShare: decimal.RequireFromString("0.5"),
		Total:         decimal.NewFromInt(1242000000),
		PayoutRatio:   decimal.RequireFromString("15.3"),
	}})
	for _, want := range []string{"2024-06-05", "0.5", "15.30%"} {
		if !strings.Contains(got, want) {
			t.Errorf("DividendsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestMetalsMarkdown(t *testing.T) {
	got := MetalsMarkdown([]isyatirim.MetalQuote{{
		Code:          isyatirim.Gold,
		Description:   "Altın",
		Last:          decimal.RequireFromString("2451.2"),
		PreviousClose: decimal.RequireFromString("2440.0"),
		ChangePct:     decimal.RequireFromString("0.46"),
	}})
	for _, want := range []string{"Altın", "2451.20", "+0.46%"} {
		if !strings.Contains(got, want) {
			t.Errorf("MetalsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
