package bist

import (
	"fmt"
	"strings"

	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

// Mode selects how external cash enters the simulation.
type Mode int

const (
	// LumpSum invests the whole contribution amount once, on the first
	// trading day of the range.
	LumpSum Mode = iota
	// Periodic invests the contribution amount on the first trading day of
	// every calendar month in the range.
	Periodic
)

func (m Mode) String() string {
	if m == Periodic {
		return "periodic"
	}
	return "lump-sum"
}

// ParseMode parses a Mode from its string form.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "lump-sum", "lump", "lumpsum":
		return LumpSum, nil
	case "periodic", "monthly":
		return Periodic, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want lump-sum or periodic)", s)
}

// SimulationConfig is the immutable input of one simulation run.
type SimulationConfig struct {
	Ticker   string
	Range    date.Range
	Mode     Mode
	Reinvest bool            // reinvest net dividends on their payment day
	Amount   decimal.Decimal // contribution amount in TRY, per event

	// TransactOnFinal makes the last tape event a normal transacting event.
	// By default the last event only carries the closing price used for
	// valuation, which in periodic mode drops the final month's
	// contribution.
	TransactOnFinal bool
}

// Validate rejects malformed parameters before any data is fetched or any
// simulation work begins.
func (c SimulationConfig) Validate() error {
	if c.Ticker == "" {
		return fmt.Errorf("missing ticker")
	}
	if c.Range.To.Before(c.Range.From) {
		return fmt.Errorf("invalid range: end %s is before start %s", c.Range.To, c.Range.From)
	}
	if !c.Amount.IsPositive() {
		return fmt.Errorf("contribution amount must be positive, got %s", c.Amount)
	}
	return nil
}

// Event is one entry of the event tape: a price point plus what happens on
// it. A day that is both a contribution date and a dividend date appears
// once, carrying both meanings.
type Event struct {
	PricePoint
	Contribution bool
	Dividend     bool
}

// Tape is the reduced, date-ordered sequence of events the simulation
// transacts and values against.
type Tape []Event

// contributionDates returns the set of days on which fresh external cash is
// contributed, as a set keyed by day.
func contributionDates(s Series, mode Mode) map[date.Date]bool {
	days := make(map[date.Date]bool)
	if len(s) == 0 {
		return days
	}
	days[s.First().Day] = true
	if mode == Periodic {
		// earliest trading day of every calendar month present in the series;
		// a month with no data simply contributes nothing.
		firsts := make(map[date.MonthKey]date.Date)
		for _, p := range s {
			m := date.MonthOf(p.Day)
			if cur, ok := firsts[m]; !ok || p.Day.Before(cur) {
				firsts[m] = p.Day
			}
		}
		for _, d := range firsts {
			days[d] = true
		}
	}
	return days
}

// buildTape merges contribution dates, dividend dates and the range
// boundaries into a single chronological tape.
func buildTape(s Series, mode Mode) (Tape, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	contrib := contributionDates(s, mode)
	last := s.Last().Day

	var tape Tape
	for _, p := range s {
		ev := Event{
			PricePoint:   p,
			Contribution: contrib[p.Day],
			Dividend:     p.HasDividend(),
		}
		if ev.Contribution || ev.Dividend || p.Day == last {
			tape = append(tape, ev)
		}
	}
	if len(tape) < 2 {
		return nil, fmt.Errorf("%w: tape has %d events, need at least 2", ErrInsufficientData, len(tape))
	}
	return tape, nil
}
