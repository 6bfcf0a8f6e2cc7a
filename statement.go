package bist

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrLineItemUnavailable is returned when a statement has no row for the
// requested line item, or the row has no value for the requested period.
var ErrLineItemUnavailable = errors.New("line item unavailable")

// Period identifies one reporting column of a financial statement, taken
// from the published year/quarter pair. Quarters are cumulative within the
// fiscal year: 3, 6, 9 and 12 months.
type Period struct {
	Year    int
	Quarter int
}

func (p Period) String() string { return fmt.Sprintf("%d/%d", p.Quarter, p.Year) }

// Before reports chronological order of reporting periods.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Quarter < o.Quarter
}

// lineItem is one published statement row. The same description can appear
// more than once: "Finansal Borçlar" is published under both short and long
// term liabilities.
type lineItem struct {
	desc    string
	english string
	vals    []decimal.Decimal
	has     []bool
}

// Statement is a financial statement as published: line items in rows,
// reporting periods in columns, values cumulative within each fiscal year.
// Rows keep publication order.
type Statement struct {
	Ticker  string
	Periods []Period // ascending
	items   []lineItem
	byDesc  map[string][]int // normalized description to row indexes
}

// NewStatement builds an empty statement over the given periods, sorted
// ascending and deduplicated.
func NewStatement(ticker string, periods []Period) *Statement {
	ps := append([]Period(nil), periods...)
	sort.Slice(ps, func(i, j int) bool { return ps[i].Before(ps[j]) })
	out := ps[:0]
	for _, p := range ps {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return &Statement{
		Ticker:  ticker,
		Periods: out,
		byDesc:  make(map[string][]int),
	}
}

func normalizeItem(desc string) string { return strings.TrimSpace(desc) }

// Set records a value for one occurrence of a line item at one period.
// Occurrence 0 is the first published row with that description; rows are
// created on demand. Unknown periods are ignored.
func (s *Statement) Set(item, english string, occurrence int, period Period, v decimal.Decimal) {
	col := s.col(period)
	if col < 0 {
		return
	}
	key := normalizeItem(item)
	for len(s.byDesc[key]) <= occurrence {
		s.items = append(s.items, lineItem{
			desc:    key,
			english: english,
			vals:    make([]decimal.Decimal, len(s.Periods)),
			has:     make([]bool, len(s.Periods)),
		})
		s.byDesc[key] = append(s.byDesc[key], len(s.items)-1)
	}
	it := &s.items[s.byDesc[key][occurrence]]
	it.vals[col] = v
	it.has[col] = true
	if english != "" {
		it.english = english
	}
}

func (s *Statement) col(p Period) int {
	for i, q := range s.Periods {
		if q == p {
			return i
		}
	}
	return -1
}

func (s *Statement) row(item string, occurrence int) (*lineItem, error) {
	idx, ok := s.byDesc[normalizeItem(item)]
	if !ok || occurrence >= len(idx) {
		return nil, fmt.Errorf("%w: %q for %s", ErrLineItemUnavailable, item, s.Ticker)
	}
	return &s.items[idx[occurrence]], nil
}

// Value returns the first occurrence of the line item at the given period.
func (s *Statement) Value(item string, period Period) (decimal.Decimal, error) {
	return s.ValueN(item, 0, period)
}

// ValueN returns the n-th occurrence of the line item at the given period.
func (s *Statement) ValueN(item string, occurrence int, period Period) (decimal.Decimal, error) {
	it, err := s.row(item, occurrence)
	if err != nil {
		return decimal.Zero, err
	}
	col := s.col(period)
	if col < 0 || !it.has[col] {
		return decimal.Zero, fmt.Errorf("%w: %q at %s for %s", ErrLineItemUnavailable, item, period, s.Ticker)
	}
	return it.vals[col], nil
}

// Sum adds every occurrence of the line item at the given period. Used for
// descriptions published under more than one section, like financial debt.
func (s *Statement) Sum(item string, period Period) (decimal.Decimal, error) {
	idx, ok := s.byDesc[normalizeItem(item)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q for %s", ErrLineItemUnavailable, item, s.Ticker)
	}
	total := decimal.Zero
	for n := range idx {
		v, err := s.ValueN(item, n, period)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	return total, nil
}

// Items returns the line item descriptions in publication order.
func (s *Statement) Items() []string {
	out := make([]string, len(s.items))
	for i, it := range s.items {
		out[i] = it.desc
	}
	return out
}

// English returns the English description recorded for a line item, or the
// item itself when none was published.
func (s *Statement) English(item string) string {
	it, err := s.row(item, 0)
	if err != nil || it.english == "" {
		return item
	}
	return it.english
}

// Discrete returns a copy where every value past the first fiscal quarter is
// differenced against the previous quarter of the same year, turning the
// published year-to-date columns into single-quarter columns. First quarters
// are kept as published; a column whose predecessor is missing is dropped.
func (s *Statement) Discrete() *Statement {
	d := NewStatement(s.Ticker, s.Periods)
	occ := make(map[string]int)
	for _, it := range s.items {
		n := occ[it.desc]
		occ[it.desc]++
		for col, p := range s.Periods {
			if !it.has[col] {
				continue
			}
			switch {
			case p.Quarter == 3:
				d.Set(it.desc, it.english, n, p, it.vals[col])
			case col > 0 && s.Periods[col-1].Year == p.Year && it.has[col-1]:
				d.Set(it.desc, it.english, n, p, it.vals[col].Sub(it.vals[col-1]))
			}
		}
	}
	return d
}

// TTM sums the line item's four most recent values. Meaningful on a discrete
// statement only. It errors unless all four quarters are present.
func (s *Statement) TTM(item string) (decimal.Decimal, error) {
	if len(s.Periods) < 4 {
		return decimal.Zero, fmt.Errorf("%w: %q needs four quarters for %s", ErrLineItemUnavailable, item, s.Ticker)
	}
	sum := decimal.Zero
	for _, p := range s.Periods[len(s.Periods)-4:] {
		v, err := s.Value(item, p)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(v)
	}
	return sum, nil
}

// Latest returns the line item's value at the most recent period.
func (s *Statement) Latest(item string) (decimal.Decimal, error) {
	if len(s.Periods) == 0 {
		return decimal.Zero, fmt.Errorf("%w: %q, statement has no periods", ErrLineItemUnavailable, item)
	}
	return s.Value(item, s.Periods[len(s.Periods)-1])
}

// YearAgo returns the line item's value four periods back from the latest.
func (s *Statement) YearAgo(item string) (decimal.Decimal, error) {
	if len(s.Periods) < 5 {
		return decimal.Zero, fmt.Errorf("%w: %q, no year-ago period for %s", ErrLineItemUnavailable, item, s.Ticker)
	}
	return s.Value(item, s.Periods[len(s.Periods)-5])
}
