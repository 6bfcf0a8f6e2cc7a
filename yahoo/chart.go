package yahoo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

/*
	{
	  "chart": {
	    "result": [{
	      "meta": {"currency": "TRY", "symbol": "FROTO.IS", ...},
	      "timestamp": [1704178800, 1704265200, ...],
	      "events": {
	        "dividends": {
	          "1707289200": {"amount": 13.2, "date": 1707289200}
	        }
	      },
	      "indicators": {
	        "quote": [{"close": [915.0, 922.5, null, ...], ...}]
	      }
	    }],
	    "error": null
	  }
	}
*/
func parseChart(symbol string, body []byte) ([]Bar, error) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("parsing %s chart: %w", symbol, err)
	}
	if desc, err := jsonpath.Get("$.chart.error.description", jobj); err == nil {
		return nil, fmt.Errorf("%s chart refused: %v", symbol, desc)
	}

	timestamps, err := chartList(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, fmt.Errorf("%s chart has no timestamps: %w", symbol, err)
	}
	closes, err := chartList(jobj, "$.chart.result[0].indicators.quote[0].close")
	if err != nil {
		return nil, fmt.Errorf("%s chart has no closes: %w", symbol, err)
	}
	if len(timestamps) != len(closes) {
		return nil, fmt.Errorf("%s chart has %d timestamps for %d closes", symbol, len(timestamps), len(closes))
	}

	// dividends are keyed by their event timestamp, not aligned to bars
	dividends := make(map[date.Date]decimal.Decimal)
	if jdivs, err := jsonpath.Get("$.chart.result[0].events.dividends", jobj); err == nil {
		jmap, ok := jdivs.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s chart dividends are not a map", symbol)
		}
		for key, jdiv := range jmap {
			ts, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad %s dividend timestamp %q: %w", symbol, key, err)
			}
			jamount, err := jsonpath.Get("$.amount", jdiv)
			if err != nil {
				return nil, fmt.Errorf("%s dividend at %s has no amount: %w", symbol, key, err)
			}
			amount, ok := jamount.(float64)
			if !ok {
				return nil, fmt.Errorf("%s dividend amount %v is not a number", symbol, jamount)
			}
			dividends[date.FromUnix(ts)] = decimal.NewFromFloat(amount)
		}
	}

	bars := make([]Bar, 0, len(timestamps))
	for i, jts := range timestamps {
		ts, ok := jts.(float64)
		if !ok {
			return nil, fmt.Errorf("%s chart timestamp %v is not a number", symbol, jts)
		}
		close, ok := closes[i].(float64)
		if !ok {
			continue // null close, a holiday bar
		}
		day := date.FromUnix(int64(ts))
		bar := Bar{Day: day, Close: decimal.NewFromFloat(close)}
		if amount, paid := dividends[day]; paid {
			bar.Dividend = amount
		}
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Day.Before(bars[j].Day) })
	return bars, nil
}

// chartList resolves a jsonpath that must point at a list.
func chartList(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q is not a list", path)
	}
	return jlist, nil
}
