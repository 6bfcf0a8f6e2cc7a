package bist

import (
	"fmt"

	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

// LedgerRow is the fully-resolved state of the simulation after one event.
type LedgerRow struct {
	Day      date.Date
	Close    decimal.Decimal // TRY
	CloseUSD decimal.Decimal
	FX       decimal.Decimal

	NetDividend    decimal.Decimal // per share, this event
	DividendIncome decimal.Decimal // recognized this event, TRY
	Contribution   decimal.Decimal // fresh external cash this event, TRY

	SharesBought int64           // this event (contribution and reinvestment combined)
	CashSpent    decimal.Decimal // this event, TRY
	Leftover     decimal.Decimal // after this event, TRY

	SharesHeld int64           // cumulative
	ValueTRY   decimal.Decimal // running portfolio value
	ValueUSD   decimal.Decimal
}

// Ledger is the complete, date-indexed outcome of one simulation run. It is
// owned by the run that produced it and never shared.
type Ledger struct {
	Config SimulationConfig
	Rows   []LedgerRow

	// report accumulators, resolved during the walk so the reduction does
	// not have to re-derive which purchase belonged to which branch.
	investedTRY        decimal.Decimal // cash spent on contribution purchases
	investedUSD        decimal.Decimal // same, each spend converted at its row's rate
	dividendIncomeTRY  decimal.Decimal
	dividendIncomeUSD  decimal.Decimal // each payment converted at its row's rate
	sharesFromDividend int64
	finalLeftover      decimal.Decimal
	finalLeftoverFX    decimal.Decimal // rate of the row the leftover was last touched on
}

// Simulate runs the full simulation: series validation, tax adjustment, tape
// construction, and the sequential fold. The fold is a strict left-to-right
// recurrence: every purchase depends on the previous event's leftover cash
// and share count, so rows are resolved one at a time, in tape order.
func Simulate(cfg SimulationConfig, series Series) (*Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	tape, err := buildTape(series.WithNetDividends(), cfg.Mode)
	if err != nil {
		return nil, err
	}

	l := &Ledger{Config: cfg, Rows: make([]LedgerRow, 0, len(tape))}

	// accumulator carried across the walk
	var (
		shares   int64
		leftover decimal.Decimal
		cumDiv   decimal.Decimal // un-reinvested running dividend income, TRY
	)

	seed := tape[0]
	if !seed.Contribution {
		return nil, fmt.Errorf("first event %s is not a contribution date", seed.Day)
	}
	row := l.newRow(seed)
	q, rem := cfg.Amount.QuoRem(seed.Close, 0)
	bought := q.IntPart()
	leftover = rem
	spent := seed.Close.Mul(q)
	shares = bought
	row.Contribution = cfg.Amount
	row.SharesBought = bought
	row.CashSpent = spent
	l.investedTRY = l.investedTRY.Add(spent)
	l.investedUSD = l.investedUSD.Add(spent.Div(seed.FX))
	l.finalLeftover, l.finalLeftoverFX = leftover, seed.FX
	l.close(&row, shares, leftover, cumDiv, cfg.Reinvest)

	lastTransacting := len(tape) - 2
	if cfg.TransactOnFinal {
		lastTransacting = len(tape) - 1
	}

	for i := 1; i < len(tape); i++ {
		ev := tape[i]
		row := l.newRow(ev)

		if i <= lastTransacting {
			// Dividends resolve before a same-day contribution: reinvestment
			// happens first, the fresh cash lands on the resulting leftover.
			if ev.Dividend {
				income := ev.NetDividend.Mul(decimal.NewFromInt(shares))
				cumDiv = cumDiv.Add(income)
				row.DividendIncome = income
				l.dividendIncomeTRY = l.dividendIncomeTRY.Add(income)
				l.dividendIncomeUSD = l.dividendIncomeUSD.Add(income.Div(ev.FX))
				if cfg.Reinvest {
					investable := income.Add(leftover)
					q, rem := investable.QuoRem(ev.Close, 0)
					bought := q.IntPart()
					leftover = rem
					spent := ev.Close.Mul(q)
					shares += bought
					l.sharesFromDividend += bought
					row.SharesBought += bought
					row.CashSpent = row.CashSpent.Add(spent)
					l.finalLeftover, l.finalLeftoverFX = leftover, ev.FX
				}
			}
			if ev.Contribution {
				investable := cfg.Amount.Add(leftover)
				q, rem := investable.QuoRem(ev.Close, 0)
				bought := q.IntPart()
				leftover = rem
				spent := ev.Close.Mul(q)
				shares += bought
				row.Contribution = cfg.Amount
				row.SharesBought += bought
				row.CashSpent = row.CashSpent.Add(spent)
				l.investedTRY = l.investedTRY.Add(spent)
				l.investedUSD = l.investedUSD.Add(spent.Div(ev.FX))
				l.finalLeftover, l.finalLeftoverFX = leftover, ev.FX
			}
		}
		// past lastTransacting the event is inert: it only carries the
		// closing price and rate used for the final valuation.

		l.close(&row, shares, leftover, cumDiv, cfg.Reinvest)
	}

	return l, nil
}

// newRow starts a ledger row with the event's market data.
func (l *Ledger) newRow(ev Event) LedgerRow {
	return LedgerRow{
		Day:         ev.Day,
		Close:       ev.Close,
		CloseUSD:    ev.CloseUSD(),
		FX:          ev.FX,
		NetDividend: ev.NetDividend,
	}
}

// close fills the carried state and running valuation, then appends the row.
func (l *Ledger) close(row *LedgerRow, shares int64, leftover, cumDiv decimal.Decimal, reinvest bool) {
	row.Leftover = leftover
	row.SharesHeld = shares
	row.ValueTRY = row.Close.Mul(decimal.NewFromInt(shares))
	row.ValueUSD = row.CloseUSD.Mul(decimal.NewFromInt(shares))
	if !reinvest {
		// banked dividends count toward the portfolio, as cash
		row.ValueTRY = row.ValueTRY.Add(cumDiv)
		row.ValueUSD = row.ValueUSD.Add(cumDiv.Div(row.FX))
	}
	l.Rows = append(l.Rows, *row)
}

// Last returns the final ledger row.
func (l *Ledger) Last() LedgerRow { return l.Rows[len(l.Rows)-1] }
