package yahoo

import (
	"testing"
	"time"

	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

// 1704240000 = 2024-01-03, 1704326400 = 2024-01-04, 1704412800 = 2024-01-05
const chartPayload = `{
  "chart": {
    "result": [{
      "meta": {"currency": "TRY", "symbol": "FROTO.IS"},
      "timestamp": [1704240000, 1704326400, 1704412800],
      "events": {
        "dividends": {
          "1704326400": {"amount": 13.2, "date": 1704326400}
        }
      },
      "indicators": {
        "quote": [{"close": [915.0, null, 922.5]}]
      }
    }],
    "error": null
  }
}`

func TestParseChart(t *testing.T) {
	bars, err := parseChart("FROTO.IS", []byte(chartPayload))
	if err != nil {
		t.Fatalf("parseChart() error = %v", err)
	}
	// the null close bar is dropped
	if len(bars) != 2 {
		t.Fatalf("len(bars) = %d, want 2", len(bars))
	}
	if bars[0].Day != date.New(2024, time.January, 3) {
		t.Errorf("bars[0].Day = %s, want 2024-01-03", bars[0].Day)
	}
	if !bars[0].Close.Equal(decimal.NewFromInt(915)) {
		t.Errorf("bars[0].Close = %s, want 915", bars[0].Close)
	}
	if !bars[0].Dividend.IsZero() {
		t.Errorf("bars[0].Dividend = %s, want 0", bars[0].Dividend)
	}
	// the dividend fell on the dropped bar's day, so it is lost with it;
	// the surviving bars carry only their own payments
	if !bars[1].Dividend.IsZero() {
		t.Errorf("bars[1].Dividend = %s, want 0", bars[1].Dividend)
	}
}

func TestParseChart_DividendOnTradingDay(t *testing.T) {
	payload := `{
	  "chart": {
	    "result": [{
	      "timestamp": [1704240000, 1704326400],
	      "events": {"dividends": {"1704326400": {"amount": 5.5, "date": 1704326400}}},
	      "indicators": {"quote": [{"close": [100.0, 101.0]}]}
	    }],
	    "error": null
	  }
	}`
	bars, err := parseChart("GARAN.IS", []byte(payload))
	if err != nil {
		t.Fatalf("parseChart() error = %v", err)
	}
	if !bars[1].Dividend.Equal(decimal.NewFromFloat(5.5)) {
		t.Errorf("bars[1].Dividend = %s, want 5.5", bars[1].Dividend)
	}
}

func TestParseChart_Refused(t *testing.T) {
	payload := `{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}}}`
	if _, err := parseChart("XXXX.IS", []byte(payload)); err == nil {
		t.Fatal("parseChart() accepted an error payload")
	}
}

func TestSymbol(t *testing.T) {
	if got := Symbol("FROTO"); got != "FROTO.IS" {
		t.Errorf("Symbol(FROTO) = %q, want FROTO.IS", got)
	}
	if got := Symbol(USDTRY); got != USDTRY {
		t.Errorf("Symbol(%s) = %q, want unchanged", USDTRY, got)
	}
}
