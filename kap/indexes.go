package kap

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Index is a Borsa Istanbul index with its member tickers.
type Index struct {
	Name    string
	Members []string
}

// Indexes returns every index on the platform with its members, in page
// order.
func (c *Client) Indexes() ([]Index, error) {
	body, err := c.get(indexesURL)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch index lists: %w", err)
	}
	return parseIndexes(body)
}

// The index page interleaves header blocks and member columns: member block
// 2n+1 belongs to index n. Inside a member block every company again takes
// three cells, with the ticker second.
func parseIndexes(body []byte) ([]Index, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cannot parse index lists: %w", err)
	}

	var list []Index
	blocks := doc.Find("div[class*=column-type]")
	doc.Find("a.w-inline-block.sub-leftresultbox").Each(func(i int, header *goquery.Selection) {
		ix := Index{Name: strings.TrimSpace(header.Find("div.type-normal.bold").First().Text())}
		block := blocks.Eq(i*2 + 1)
		block.Find("a.vcell").Each(func(j int, cell *goquery.Selection) {
			if j%3 == 1 {
				ix.Members = append(ix.Members, strings.TrimSpace(cell.Text()))
			}
		})
		list = append(list, ix)
	})
	if len(list) == 0 {
		return nil, fmt.Errorf("index page markup has changed")
	}
	return list, nil
}
