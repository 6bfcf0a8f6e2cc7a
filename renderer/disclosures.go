package renderer

import (
	"bytes"
	"strings"

	"github.com/borsatools/bist/kap"
	md "github.com/nao1215/markdown"
)

// DisclosuresMarkdown renders the public disclosure feed, newest first.
func DisclosuresMarkdown(disclosures []kap.Disclosure) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Disclosures")
	if len(disclosures) == 0 {
		doc.PlainText("No disclosure over the period.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Date", "Stocks", "Company", "Filing"},
	}
	for _, d := range disclosures {
		table.Rows = append(table.Rows, []string{
			d.Day.String(),
			d.Stocks,
			d.Company,
			md.Link(d.Title, d.Link()),
		})
	}
	doc.Table(table)

	return doc.String()
}

// CompaniesMarkdown renders the Borsa Istanbul company directory.
func CompaniesMarkdown(companies []kap.Company) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Borsa Istanbul Companies")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Ticker", "Company"},
	}
	for _, c := range companies {
		table.Rows = append(table.Rows, []string{md.Link(c.Code, c.URL), c.Name})
	}
	doc.Table(table)

	return doc.String()
}

// IndexesMarkdown renders every index with its member tickers.
func IndexesMarkdown(indexes []kap.Index) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Indexes")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Index", "Members"},
	}
	for _, ix := range indexes {
		table.Rows = append(table.Rows, []string{ix.Name, strings.Join(ix.Members, ", ")})
	}
	doc.Table(table)

	return doc.String()
}
