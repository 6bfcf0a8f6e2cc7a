package bist

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrRatioUnavailable is returned when a ratio cannot be computed, usually
// because its denominator is zero for the period.
var ErrRatioUnavailable = errors.New("ratio unavailable")

// Statement line items as published, in Turkish. Paid-in capital doubles as
// the share count since the nominal value of a share is one lira.
const (
	ItemNetIncomeParent = "Ana Ortaklık Payları"
	ItemPaidInCapital   = "Ödenmiş Sermaye"
	ItemCurrentAssets   = "Dönen Varlıklar"
	ItemShortTermLiabs  = "Kısa Vadeli Yükümlülükler"
	ItemRevenue         = "Satış Gelirleri"
	ItemGrossProfit     = "BRÜT KAR (ZARAR)"
	ItemOperatingProfit = "FAALİYET KARI (ZARARI)"
	ItemNetOperating    = "Net Faaliyet Kar/Zararı"
	ItemDepreciation    = "Amortisman Giderleri"
	ItemCash            = "Nakit ve Nakit Benzerleri"
	ItemInvestments     = "Finansal Yatırımlar"
	ItemFinancialDebt   = "Finansal Borçlar"
	ItemEquityParent    = "Ana Ortaklığa Ait Özkaynaklar"
	ItemTotalAssets     = "TOPLAM VARLIKLAR"
	ItemInventories     = "Stoklar"
	ItemOpeningCash     = "Dönem Başı Nakit Değerler"
)

var hundred = decimal.NewFromInt(100)

// Review computes valuation, profitability and liquidity ratios for one
// company from its published statements and recent closing prices.
//
// Balance sheet figures come from the cumulative statement, flow figures
// from its quarter-differenced view. A missing line item or a zero
// denominator surfaces as an error, never as a substituted value.
type Review struct {
	Ticker     string
	Cumulative *Statement
	Quarterly  *Statement

	Price         decimal.Decimal // latest close, lira
	PreviousClose decimal.Decimal
}

// NewReview builds a review over a cumulative statement and the two most
// recent closing prices.
func NewReview(ticker string, cumulative *Statement, price, previousClose decimal.Decimal) *Review {
	return &Review{
		Ticker:        ticker,
		Cumulative:    cumulative,
		Quarterly:     cumulative.Discrete(),
		Price:         price,
		PreviousClose: previousClose,
	}
}

func ratio(num, den decimal.Decimal, what string) (decimal.Decimal, error) {
	if den.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: %s has zero denominator", ErrRatioUnavailable, what)
	}
	return num.Div(den), nil
}

// Shares returns the number of shares outstanding, read off the latest
// paid-in capital figure.
func (r *Review) Shares() (decimal.Decimal, error) {
	return r.Cumulative.Latest(ItemPaidInCapital)
}

// MarketCap is shares outstanding times the latest close.
func (r *Review) MarketCap() (decimal.Decimal, error) {
	shares, err := r.Shares()
	if err != nil {
		return decimal.Zero, err
	}
	return shares.Mul(r.Price), nil
}

// DailyChange returns the percent change of the latest close over the
// previous one.
func (r *Review) DailyChange() (decimal.Decimal, error) {
	rel, err := ratio(r.Price, r.PreviousClose, "daily change")
	if err != nil {
		return decimal.Zero, err
	}
	return rel.Sub(decimal.NewFromInt(1)).Mul(hundred).Round(2), nil
}

// EarningsPerShare returns net income attributable to the parent over the
// trailing four quarters, per share.
func (r *Review) EarningsPerShare() (decimal.Decimal, error) {
	earnings, err := r.Quarterly.TTM(ItemNetIncomeParent)
	if err != nil {
		return decimal.Zero, err
	}
	shares, err := r.Shares()
	if err != nil {
		return decimal.Zero, err
	}
	return ratio(earnings, shares, "earnings per share")
}

// PriceToEarnings returns price over trailing-twelve-month earnings per
// share.
func (r *Review) PriceToEarnings() (decimal.Decimal, error) {
	eps, err := r.EarningsPerShare()
	if err != nil {
		return decimal.Zero, err
	}
	pe, err := ratio(r.Price, eps, "price to earnings")
	if err != nil {
		return decimal.Zero, err
	}
	return pe.Round(2), nil
}

// PriceToBook returns market cap over the parent's book value.
func (r *Review) PriceToBook() (decimal.Decimal, error) {
	mc, err := r.MarketCap()
	if err != nil {
		return decimal.Zero, err
	}
	book, err := r.Cumulative.Latest(ItemEquityParent)
	if err != nil {
		return decimal.Zero, err
	}
	pb, err := ratio(mc, book, "price to book")
	if err != nil {
		return decimal.Zero, err
	}
	return pb.Round(2), nil
}

// PriceToSales returns market cap over revenue, both for the latest quarter
// alone and over the trailing four quarters.
func (r *Review) PriceToSales() (quarter, ttm decimal.Decimal, err error) {
	mc, err := r.MarketCap()
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	last, err := r.Quarterly.Latest(ItemRevenue)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	annual, err := r.Quarterly.TTM(ItemRevenue)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if quarter, err = ratio(mc, last, "price to sales"); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if ttm, err = ratio(mc, annual, "price to sales"); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return quarter.Round(3), ttm.Round(3), nil
}

// ReturnOnEquity returns trailing-twelve-month parent net income over the
// average of the latest and year-ago parent equity, in percent.
func (r *Review) ReturnOnEquity() (decimal.Decimal, error) {
	return r.returnOn(ItemEquityParent, "return on equity")
}

// ReturnOnAssets returns trailing-twelve-month parent net income over the
// average of the latest and year-ago total assets, in percent.
func (r *Review) ReturnOnAssets() (decimal.Decimal, error) {
	return r.returnOn(ItemTotalAssets, "return on assets")
}

func (r *Review) returnOn(base, what string) (decimal.Decimal, error) {
	income, err := r.Quarterly.TTM(ItemNetIncomeParent)
	if err != nil {
		return decimal.Zero, err
	}
	now, err := r.Cumulative.Latest(base)
	if err != nil {
		return decimal.Zero, err
	}
	ago, err := r.Cumulative.YearAgo(base)
	if err != nil {
		return decimal.Zero, err
	}
	avg := now.Add(ago).Div(decimal.NewFromInt(2))
	v, err := ratio(income, avg, what)
	if err != nil {
		return decimal.Zero, err
	}
	return v.Mul(hundred).Round(3), nil
}

// FinancialDebt returns short plus long term financial borrowings at the
// latest period.
func (r *Review) FinancialDebt() (decimal.Decimal, error) {
	if len(r.Cumulative.Periods) == 0 {
		return decimal.Zero, fmt.Errorf("%w: %q, statement has no periods", ErrLineItemUnavailable, ItemFinancialDebt)
	}
	return r.Cumulative.Sum(ItemFinancialDebt, r.Cumulative.Periods[len(r.Cumulative.Periods)-1])
}

// DebtToEquity returns total financial debt over parent equity, in percent.
func (r *Review) DebtToEquity() (decimal.Decimal, error) {
	debt, err := r.FinancialDebt()
	if err != nil {
		return decimal.Zero, err
	}
	equity, err := r.Cumulative.Latest(ItemEquityParent)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := ratio(debt, equity, "debt to equity")
	if err != nil {
		return decimal.Zero, err
	}
	return v.Mul(hundred).Round(2), nil
}

// NetDebt returns financial debt less cash and financial investments at the
// latest period.
func (r *Review) NetDebt() (decimal.Decimal, error) {
	debt, err := r.FinancialDebt()
	if err != nil {
		return decimal.Zero, err
	}
	cash, err := r.Cumulative.Latest(ItemCash)
	if err != nil {
		return decimal.Zero, err
	}
	investments, err := r.Cumulative.Latest(ItemInvestments)
	if err != nil {
		return decimal.Zero, err
	}
	return debt.Sub(cash).Sub(investments), nil
}

// Liquidity bundles the three balance-sheet liquidity ratios.
type Liquidity struct {
	Current decimal.Decimal
	Quick   decimal.Decimal
	Cash    decimal.Decimal
}

// Liquidity returns current, quick and cash ratios at the latest period.
func (r *Review) Liquidity() (Liquidity, error) {
	liabilities, err := r.Cumulative.Latest(ItemShortTermLiabs)
	if err != nil {
		return Liquidity{}, err
	}
	assets, err := r.Cumulative.Latest(ItemCurrentAssets)
	if err != nil {
		return Liquidity{}, err
	}
	inventories, err := r.Cumulative.Latest(ItemInventories)
	if err != nil {
		return Liquidity{}, err
	}
	cash, err := r.Cumulative.Latest(ItemCash)
	if err != nil {
		return Liquidity{}, err
	}
	securities, err := r.Cumulative.Latest(ItemInvestments)
	if err != nil {
		return Liquidity{}, err
	}
	var l Liquidity
	if l.Current, err = ratio(assets, liabilities, "current ratio"); err != nil {
		return Liquidity{}, err
	}
	if l.Quick, err = ratio(assets.Sub(inventories), liabilities, "quick ratio"); err != nil {
		return Liquidity{}, err
	}
	if l.Cash, err = ratio(cash.Add(securities), liabilities, "cash ratio"); err != nil {
		return Liquidity{}, err
	}
	l.Current = l.Current.Round(2)
	l.Quick = l.Quick.Round(2)
	l.Cash = l.Cash.Round(2)
	return l, nil
}

// WorkingCapital returns current assets less short term liabilities at the
// latest period.
func (r *Review) WorkingCapital() (decimal.Decimal, error) {
	assets, err := r.Cumulative.Latest(ItemCurrentAssets)
	if err != nil {
		return decimal.Zero, err
	}
	liabilities, err := r.Cumulative.Latest(ItemShortTermLiabs)
	if err != nil {
		return decimal.Zero, err
	}
	return assets.Sub(liabilities), nil
}

// GrossMargin returns the latest quarter's gross profit and its margin over
// revenue, in percent.
func (r *Review) GrossMargin() (profit, margin decimal.Decimal, err error) {
	profit, err = r.Quarterly.Latest(ItemGrossProfit)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	revenue, err := r.Quarterly.Latest(ItemRevenue)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	margin, err = ratio(profit, revenue, "gross margin")
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return profit, margin.Mul(hundred).Round(2), nil
}

// EBITDA returns the latest quarter's net operating income plus depreciation
// and amortization, with its margin over revenue in percent.
func (r *Review) EBITDA() (value, margin decimal.Decimal, err error) {
	operating, err := r.Quarterly.Latest(ItemNetOperating)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	depreciation, err := r.Quarterly.Latest(ItemDepreciation)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	revenue, err := r.Quarterly.Latest(ItemRevenue)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	value = operating.Add(depreciation)
	margin, err = ratio(value, revenue, "ebitda margin")
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return value, margin.Mul(hundred).Round(2), nil
}

// NetMargin returns the latest quarter's parent net income and its margin
// over revenue, in percent.
func (r *Review) NetMargin() (income, margin decimal.Decimal, err error) {
	income, err = r.Quarterly.Latest(ItemNetIncomeParent)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	revenue, err := r.Quarterly.Latest(ItemRevenue)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	margin, err = ratio(income, revenue, "net margin")
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return income, margin.Mul(hundred).Round(2), nil
}

// OperatingIncome returns the latest quarter's operating profit as
// published.
func (r *Review) OperatingIncome() (decimal.Decimal, error) {
	return r.Quarterly.Latest(ItemOperatingProfit)
}

// OpeningCash returns cash at the start of the latest period.
func (r *Review) OpeningCash() (decimal.Decimal, error) {
	return r.Cumulative.Latest(ItemOpeningCash)
}
