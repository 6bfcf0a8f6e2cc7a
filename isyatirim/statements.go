package isyatirim

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/borsatools/bist"
	"github.com/shopspring/decimal"
)

// statementYears is how far back FinancialStatements reaches.
const statementYears = 4

// statementRow is one published line of a four-quarter MaliTablo answer.
// value1..value4 line up with period1/year1..period4/year4 of the query;
// a quarter not yet published comes back null.
type statementRow struct {
	DescTr  string           `json:"itemDescTr"`
	DescEng string           `json:"itemDescEng"`
	Value1  *decimal.Decimal `json:"value1"`
	Value2  *decimal.Decimal `json:"value2"`
	Value3  *decimal.Decimal `json:"value3"`
	Value4  *decimal.Decimal `json:"value4"`
}

// FinancialStatements assembles the published statements of the last four
// years into one cumulative bist.Statement, TRY figures of the XI_29
// financial group. The endpoint answers at most four quarters per request,
// so the window slides a year at a time; a window with no data (a recent
// listing, say) is skipped rather than failed.
func (c *Client) FinancialStatements(ticker string, currentYear int) (*bist.Statement, error) {
	// {"value": [
	//   {
	//     "itemCode": "1A",
	//     "itemDescTr": "Dönen Varlıklar",
	//     "itemDescEng": "Current Assets",
	//     "value1": 1000, "value2": 900, "value3": 800, "value4": 700
	//   }, ...
	// ]}
	var periods []bist.Period
	for year := currentYear - statementYears + 1; year <= currentYear; year++ {
		for _, q := range []int{3, 6, 9, 12} {
			periods = append(periods, bist.Period{Year: year, Quarter: q})
		}
	}
	statement := bist.NewStatement(ticker, periods)

	got := false
	for year := currentYear; year > currentYear-statementYears; year-- {
		window := statementWindow(year)
		params := url.Values{}
		params.Set("companyCode", ticker)
		params.Set("exchange", "TRY")
		params.Set("financialGroup", "XI_29")
		params.Set("_", strconv.FormatInt(time.Now().Unix(), 10))
		for i, p := range window {
			params.Set(fmt.Sprintf("year%d", i+1), strconv.Itoa(p.Year))
			params.Set(fmt.Sprintf("period%d", i+1), strconv.Itoa(p.Quarter))
		}

		content := make([]statementRow, 0)
		if err := jwget(c.http, statementURL, params, &content); err != nil {
			return nil, fmt.Errorf("fetching %s statements for %d: %w", ticker, year, err)
		}
		if len(content) == 0 {
			continue
		}
		got = true
		mergeWindow(statement, window, content)
	}
	if !got {
		return nil, fmt.Errorf("no statement published for %s in the last %d years, check the ticker", ticker, statementYears)
	}
	return statement, nil
}

// statementWindow is the four quarters of one year, newest first, the order
// the endpoint expects its period parameters in.
func statementWindow(year int) [4]bist.Period {
	return [4]bist.Period{
		{Year: year, Quarter: 12},
		{Year: year, Quarter: 9},
		{Year: year, Quarter: 6},
		{Year: year, Quarter: 3},
	}
}

// mergeWindow copies one answer's rows into the statement. The same
// description can appear in several statement sections, so occurrences are
// counted in publication order per window.
func mergeWindow(statement *bist.Statement, window [4]bist.Period, content []statementRow) {
	occurrence := make(map[string]int)
	for _, row := range content {
		n := occurrence[row.DescTr]
		occurrence[row.DescTr]++
		for i, v := range []*decimal.Decimal{row.Value1, row.Value2, row.Value3, row.Value4} {
			if v == nil {
				continue
			}
			statement.Set(row.DescTr, row.DescEng, n, window[i], *v)
		}
	}
}
