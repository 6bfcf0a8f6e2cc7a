package isyatirim

import (
	"fmt"
	"sort"

	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

// CapitalIncrease is one rights or bonus issue. The portal publishes a
// negative timestamp for an announced but not yet dated issue; those carry a
// zero Day and sort first.
//
// The simulation deliberately ignores these: split-adjusted prices plus
// unadjusted dividend amounts is a known data-quality gap of the sources,
// so capital actions are display-only.
type CapitalIncrease struct {
	Code         string
	Day          date.Date
	AfterSplit   decimal.Decimal // capital after the split, TRY
	RightsRatio  decimal.Decimal // paid issue, percent
	RightsAmount decimal.Decimal // paid issue nominal amount, TRY
	BonusRatio   decimal.Decimal // bonus issue from reserves, percent
	BonusFromDiv decimal.Decimal // bonus issue from dividends, percent
	OtherRatio   decimal.Decimal
}

// CapitalIncreases returns the company's capital increase history, undated
// announcements first, then oldest to newest.
func (c *Client) CapitalIncreases(ticker string) ([]CapitalIncrease, error) {
	// {"d": "[{\"SHHE_HS_KODU\":\"THYAO\",\"SHHE_TARIH\":\"/Date(1494540000000)/\",...}]"}
	payload := map[string]interface{}{
		"hisseKodu":      ticker,
		"hisseTanimKodu": "", // empty selects every action type
		"yil":            0,  // every year
		"zaman":          "HEPSI",
		"endeksKodu":     "09",
		"sektorKodu":     "",
	}
	content := make([]struct {
		Code         string          `json:"SHHE_HS_KODU"`
		Timestamp    int64           `json:"SHHE_TARIH"`
		AfterSplit   decimal.Decimal `json:"HSP_BOLUNME_SONRASI_SERMAYE"`
		RightsRatio  decimal.Decimal `json:"SHHE_BDLI_ORAN"`
		RightsAmount decimal.Decimal `json:"SHHE_BDLI_NOM_TUTAR"`
		BonusRatio   decimal.Decimal `json:"SHHE_BDSZ_IK_ORAN"`
		BonusFromDiv decimal.Decimal `json:"SHHE_BDSZ_TM_ORAN"`
		OtherRatio   decimal.Decimal `json:"SHHE_RHK_ORAN"`
	}, 0)
	if err := jwpost(c.http, capitalURL, payload, &content); err != nil {
		return nil, fmt.Errorf("fetching %s capital increases: %w", ticker, err)
	}

	increases := make([]CapitalIncrease, 0, len(content))
	for _, row := range content {
		inc := CapitalIncrease{
			Code:         row.Code,
			AfterSplit:   row.AfterSplit,
			RightsRatio:  row.RightsRatio,
			RightsAmount: row.RightsAmount,
			BonusRatio:   row.BonusRatio,
			BonusFromDiv: row.BonusFromDiv,
			OtherRatio:   row.OtherRatio,
		}
		if row.Timestamp >= 0 {
			inc.Day = date.FromUnix(row.Timestamp / 1000)
		}
		increases = append(increases, inc)
	}
	sort.Slice(increases, func(i, j int) bool { return increases[i].Day.Before(increases[j].Day) })
	return increases, nil
}
