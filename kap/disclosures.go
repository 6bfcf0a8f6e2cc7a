package kap

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/borsatools/bist/date"
)

// Disclosure types accepted by the feed. All asks for everything.
const (
	All                = "ALL"
	FinancialReport    = "FR"
	MaterialEvent      = "ODA"
	Announcement       = "DUY"
	RegulatorStatement = "DG"
)

// Disclosure is one filing on the platform.
type Disclosure struct {
	Index   int
	Company string
	Stocks  string // comma separated ticker list, empty for market-wide filings
	Title   string
	Day     date.Date
	Type    string
}

// Link returns the public page of the filing.
func (d Disclosure) Link() string {
	return fmt.Sprintf("%s/tr/Bildirim/%d", baseURL, d.Index)
}

// Disclosures returns the filings of listed companies published over the
// last lookback days, newest first. kind narrows the feed to one disclosure
// type; pass All for everything. The feed answers at most MaxLookbackDays
// back.
func (c *Client) Disclosures(lookback int, kind string) ([]Disclosure, error) {
	if lookback < 1 || lookback > MaxLookbackDays {
		return nil, fmt.Errorf("lookback must be between 1 and %d days, got %d", MaxLookbackDays, lookback)
	}
	to := date.Today()
	from := to.Add(-lookback)

	v := url.Values{}
	// The feed wants a cache-busting ts of exactly nine digits.
	v.Set("ts", fmt.Sprintf("%d", time.Now().Unix())[:9])
	v.Set("fromDate", from.String())
	v.Set("toDate", to.String())
	v.Set("memberTypes", "IGS-DDK")
	if kind != "" && kind != All {
		v.Set("disclosureTypes", kind)
	}

	body, err := c.get(disclosuresURL + "?" + v.Encode())
	if err != nil {
		return nil, fmt.Errorf("cannot fetch disclosures: %w", err)
	}
	return parseDisclosures(body)
}

func parseDisclosures(body []byte) ([]Disclosure, error) {
	var feed []struct {
		Basic struct {
			Index       int    `json:"disclosureIndex"`
			CompanyName string `json:"companyName"`
			StockCodes  string `json:"stockCodes"`
			Title       string `json:"title"`
			PublishDate string `json:"publishDate"`
			Type        string `json:"disclosureType"`
		} `json:"basic"`
	}
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("cannot decode disclosure feed: %w", err)
	}

	list := make([]Disclosure, 0, len(feed))
	for _, f := range feed {
		d := Disclosure{
			Index:   f.Basic.Index,
			Company: f.Basic.CompanyName,
			Stocks:  f.Basic.StockCodes,
			Title:   f.Basic.Title,
			Type:    f.Basic.Type,
		}
		// Publish dates read like "30.08.26 18:32"; keep the day only.
		if t, err := time.Parse("02.01.06 15:04", f.Basic.PublishDate); err == nil {
			d.Day = date.New(t.Year(), t.Month(), t.Day())
		}
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Index > list[j].Index })
	return list, nil
}
