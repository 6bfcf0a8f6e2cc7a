package kap

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Company is one listed company in the directory.
type Company struct {
	Code string
	Name string
	URL  string // company page on the platform
}

// Companies returns the Borsa Istanbul company directory sorted by ticker.
func (c *Client) Companies() ([]Company, error) {
	body, err := c.get(companiesURL)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch company directory: %w", err)
	}
	return parseCompanies(body)
}

// The directory lists every company as three consecutive cells: the ticker
// carrying the company page link, the name, and the city which we skip.
func parseCompanies(body []byte) ([]Company, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cannot parse company directory: %w", err)
	}

	cells := doc.Find("a.vcell")
	var list []Company
	for i := 0; i+1 < cells.Length(); i += 3 {
		code := cells.Eq(i)
		list = append(list, Company{
			Code: strings.TrimSpace(code.Text()),
			Name: strings.TrimSpace(cells.Eq(i + 1).Text()),
			URL:  baseURL + code.AttrOr("href", ""),
		})
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("company directory markup has changed")
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}
