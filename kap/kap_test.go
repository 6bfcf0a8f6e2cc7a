package kap

import (
	"strings"
	"testing"

	"github.com/borsatools/bist/date"
)

const feedSnippet = `[
  {"basic": {"disclosureIndex": 1401822, "companyName": "TÜRK HAVA YOLLARI A.O.", "stockCodes": "THYAO", "title": "Finansal Rapor", "publishDate": "28.08.26 18:05", "disclosureType": "FR"}},
  {"basic": {"disclosureIndex": 1401976, "companyName": "ARÇELİK A.Ş.", "stockCodes": "ARCLK", "title": "Pay Geri Alım İşlemleri", "publishDate": "29.08.26 09:12", "disclosureType": "ODA"}},
  {"basic": {"disclosureIndex": 1401533, "companyName": "BORSA İSTANBUL A.Ş.", "stockCodes": "", "title": "Endeks Değişiklikleri", "publishDate": "27.08.26 17:40", "disclosureType": "DUY"}}
]`

func TestParseDisclosures(t *testing.T) {
	list, err := parseDisclosures([]byte(feedSnippet))
	if err != nil {
		t.Fatalf("parseDisclosures() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("parseDisclosures() returned %d filings, want 3", len(list))
	}

	// Newest filing first, regardless of feed order.
	if list[0].Index != 1401976 {
		t.Errorf("first filing index = %d, want 1401976", list[0].Index)
	}
	if list[0].Stocks != "ARCLK" {
		t.Errorf("first filing stocks = %q, want ARCLK", list[0].Stocks)
	}
	if want := date.New(2026, 8, 29); list[0].Day != want {
		t.Errorf("first filing day = %v, want %v", list[0].Day, want)
	}
	if list[2].Type != "DUY" {
		t.Errorf("last filing type = %q, want DUY", list[2].Type)
	}
	if want := "https://www.kap.org.tr/tr/Bildirim/1401976"; list[0].Link() != want {
		t.Errorf("Link() = %q, want %q", list[0].Link(), want)
	}
}

func TestParseDisclosures_BadFeed(t *testing.T) {
	if _, err := parseDisclosures([]byte(`{"error":"down"}`)); err == nil {
		t.Fatal("parseDisclosures() on a non-list payload expected an error")
	}
}

func TestDisclosures_RejectsLongLookback(t *testing.T) {
	c := NewClient()
	if _, err := c.Disclosures(MaxLookbackDays+1, All); err == nil {
		t.Fatal("Disclosures() beyond the feed horizon expected an error")
	}
	if _, err := c.Disclosures(0, All); err == nil {
		t.Fatal("Disclosures(0) expected an error")
	}
}

const directorySnippet = `<div>
  <a class="vcell" href="/tr/sirket-bilgileri/ozet/1966"> THYAO </a>
  <a class="vcell">TÜRK HAVA YOLLARI A.O.</a>
  <a class="vcell">İSTANBUL</a>
  <a class="vcell" href="/tr/sirket-bilgileri/ozet/1023"> ARCLK </a>
  <a class="vcell">ARÇELİK A.Ş.</a>
  <a class="vcell">İSTANBUL</a>
</div>`

func TestParseCompanies(t *testing.T) {
	list, err := parseCompanies([]byte(directorySnippet))
	if err != nil {
		t.Fatalf("parseCompanies() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("parseCompanies() returned %d companies, want 2", len(list))
	}
	if list[0].Code != "ARCLK" || list[1].Code != "THYAO" {
		t.Errorf("companies not sorted by ticker: %v, %v", list[0].Code, list[1].Code)
	}
	if list[1].Name != "TÜRK HAVA YOLLARI A.O." {
		t.Errorf("THYAO name = %q", list[1].Name)
	}
	if !strings.HasSuffix(list[1].URL, "/tr/sirket-bilgileri/ozet/1966") {
		t.Errorf("THYAO url = %q", list[1].URL)
	}
}

func TestParseCompanies_EmptyPage(t *testing.T) {
	if _, err := parseCompanies([]byte(`<html><body></body></html>`)); err == nil {
		t.Fatal("parseCompanies() on an empty page expected an error")
	}
}

const indexSnippet = `<div>
  <a class="w-inline-block sub-leftresultbox" href="#"><div class="type-normal bold">BIST 30</div></a>
  <a class="w-inline-block sub-leftresultbox" href="#"><div class="type-normal bold">BIST BANKA</div></a>

  <div class="column-type1">header filler</div>
  <div class="column-type2">
    <a class="vcell">1</a><a class="vcell">THYAO</a><a class="vcell">x</a>
    <a class="vcell">2</a><a class="vcell">ARCLK</a><a class="vcell">x</a>
  </div>
  <div class="column-type1">header filler</div>
  <div class="column-type2">
    <a class="vcell">1</a><a class="vcell">AKBNK</a><a class="vcell">x</a>
  </div>
</div>`

func TestParseIndexes(t *testing.T) {
	list, err := parseIndexes([]byte(indexSnippet))
	if err != nil {
		t.Fatalf("parseIndexes() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("parseIndexes() returned %d indexes, want 2", len(list))
	}
	if list[0].Name != "BIST 30" {
		t.Errorf("first index name = %q, want BIST 30", list[0].Name)
	}
	if got, want := strings.Join(list[0].Members, ","), "THYAO,ARCLK"; got != want {
		t.Errorf("BIST 30 members = %q, want %q", got, want)
	}
	if got, want := strings.Join(list[1].Members, ","), "AKBNK"; got != want {
		t.Errorf("BIST BANKA members = %q, want %q", got, want)
	}
}
