package bist

import "sync"

// Report is the reduction of a completed ledger into summary totals.
//
// The two-currency figures are built by converting each local-currency
// component at the rate of the row it occurred on, never by converting the
// final totals at a single end-of-period rate.
type Report struct {
	Config SimulationConfig

	Invested          Money // contribution purchases plus final leftover cash
	InvestedUSD       Money
	DividendIncome    Money // total recognized, independent of reinvestment
	DividendIncomeUSD Money
	Value             Money // last row's running portfolio value
	ValueUSD          Money

	SharesFromDividends int64 // shares bought with dividend cash
	TotalShares         int64
	Leftover            Money // final un-invested cash
}

// Report reduces the ledger to its summary totals.
func (l *Ledger) Report() Report {
	last := l.Last()
	return Report{
		Config: l.Config,

		Invested:          M(l.investedTRY.Add(l.finalLeftover), TRY),
		InvestedUSD:       M(l.investedUSD.Add(l.finalLeftover.Div(l.finalLeftoverFX)), USD),
		DividendIncome:    M(l.dividendIncomeTRY, TRY),
		DividendIncomeUSD: M(l.dividendIncomeUSD, USD),
		Value:             M(last.ValueTRY, TRY),
		ValueUSD:          M(last.ValueUSD, USD),

		SharesFromDividends: l.sharesFromDividend,
		TotalShares:         last.SharesHeld,
		Leftover:            M(l.finalLeftover, TRY),
	}
}

// Comparison holds a scenario and its alternative with the dividend
// reinvestment flag flipped.
type Comparison struct {
	Chosen      *Ledger
	Alternative *Ledger
}

// Compare runs the configured scenario and its reinvestment alternative over
// the same frozen series. The two runs share no state, so they run on their
// own goroutines and are only joined on completion.
func Compare(cfg SimulationConfig, series Series) (*Comparison, error) {
	alt := cfg
	alt.Reinvest = !cfg.Reinvest

	var (
		wg                sync.WaitGroup
		chosen, flipped   *Ledger
		errChosen, errAlt error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		chosen, errChosen = Simulate(cfg, series)
	}()
	go func() {
		defer wg.Done()
		flipped, errAlt = Simulate(alt, series)
	}()
	wg.Wait()

	if errChosen != nil {
		return nil, errChosen
	}
	if errAlt != nil {
		return nil, errAlt
	}
	return &Comparison{Chosen: chosen, Alternative: flipped}, nil
}
