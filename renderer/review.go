package renderer

import (
	"bytes"
	"fmt"

	"github.com/borsatools/bist"
	md "github.com/nao1215/markdown"
)

// ReviewMarkdown renders the fundamental review of one company: valuation,
// profitability, debt and liquidity, each ratio computed from the published
// statements. Ratios the statements cannot answer render as n/a instead of
// failing the whole report.
func ReviewMarkdown(r *bist.Review) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Review", r.Ticker))

	change, err := r.DailyChange()
	changeCell := "n/a"
	if err == nil {
		changeCell = signedPercent(change)
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Price"), md.Bold(dec(r.Price))},
		Rows: [][]string{
			{"Daily Change", changeCell},
		},
	})

	doc.H2("Valuation")
	valuation := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Ratio", "Value"},
	}
	marketCap, err := r.MarketCap()
	valuation.Rows = append(valuation.Rows, []string{"Market Cap", orNA(dec(marketCap), err)})
	eps, err := r.EarningsPerShare()
	valuation.Rows = append(valuation.Rows, []string{"Earnings/Share (TTM)", orNA(eps.StringFixed(4), err)})
	pe, err := r.PriceToEarnings()
	valuation.Rows = append(valuation.Rows, []string{"Price/Earnings", orNA(pe.String(), err)})
	pb, err := r.PriceToBook()
	valuation.Rows = append(valuation.Rows, []string{"Price/Book", orNA(pb.String(), err)})
	psQuarter, psTTM, err := r.PriceToSales()
	valuation.Rows = append(valuation.Rows, []string{"Price/Sales (quarter)", orNA(psQuarter.String(), err)})
	valuation.Rows = append(valuation.Rows, []string{"Price/Sales (TTM)", orNA(psTTM.String(), err)})
	doc.Table(valuation)

	doc.H2("Profitability")
	profitability := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Measure", "TTM", "Margin"},
	}
	gross, grossMargin, err := r.GrossMargin()
	profitability.Rows = append(profitability.Rows, []string{"Gross Profit", orNA(dec(gross), err), orNA(percent(grossMargin), err)})
	ebitda, ebitdaMargin, err := r.EBITDA()
	profitability.Rows = append(profitability.Rows, []string{"EBITDA", orNA(dec(ebitda), err), orNA(percent(ebitdaMargin), err)})
	net, netMargin, err := r.NetMargin()
	profitability.Rows = append(profitability.Rows, []string{"Net Income", orNA(dec(net), err), orNA(percent(netMargin), err)})
	roe, err := r.ReturnOnEquity()
	profitability.Rows = append(profitability.Rows, []string{"Return on Equity", "", orNA(percent(roe), err)})
	roa, err := r.ReturnOnAssets()
	profitability.Rows = append(profitability.Rows, []string{"Return on Assets", "", orNA(percent(roa), err)})
	doc.Table(profitability)

	doc.H2("Debt and Liquidity")
	debt := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Measure", "Value"},
	}
	finDebt, err := r.FinancialDebt()
	debt.Rows = append(debt.Rows, []string{"Financial Debt", orNA(dec(finDebt), err)})
	netDebt, err := r.NetDebt()
	debt.Rows = append(debt.Rows, []string{"Net Debt", orNA(dec(netDebt), err)})
	de, err := r.DebtToEquity()
	debt.Rows = append(debt.Rows, []string{"Debt/Equity", orNA(percent(de), err)})
	wc, err := r.WorkingCapital()
	debt.Rows = append(debt.Rows, []string{"Working Capital", orNA(dec(wc), err)})
	liq, err := r.Liquidity()
	debt.Rows = append(debt.Rows, []string{"Current Ratio", orNA(liq.Current.String(), err)})
	debt.Rows = append(debt.Rows, []string{"Quick Ratio", orNA(liq.Quick.String(), err)})
	debt.Rows = append(debt.Rows, []string{"Cash Ratio", orNA(liq.Cash.String(), err)})
	doc.Table(debt)

	return doc.String()
}
