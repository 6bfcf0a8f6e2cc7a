package isyatirim

import (
	"testing"
	"time"

	"github.com/borsatools/bist/date"
	"github.com/shopspring/decimal"
)

func TestDecodeEnvelope(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"value envelope", `{"value": [{"x": 1}]}`},
		{"d envelope", `{"d": [{"x": 1}]}`},
		{"double-encoded d", `{"d": "[{\"x\": 1}]"}`},
		{"data envelope", `{"data": [{"x": 1}]}`},
		{"bare array", `[{"x": 1}]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out []struct {
				X int `json:"x"`
			}
			if err := decodeEnvelope([]byte(tc.body), &out); err != nil {
				t.Fatalf("decodeEnvelope() error = %v", err)
			}
			if len(out) != 1 || out[0].X != 1 {
				t.Errorf("decodeEnvelope() = %v, want one row with x=1", out)
			}
		})
	}
}

func TestParseTurkishNumber(t *testing.T) {
	for in, want := range map[string]string{
		"1.234,56": "1234.56",
		"0,85":     "0.85",
		"12":       "12",
		"":         "0",
		"-":        "0",
	} {
		got, err := parseTurkishNumber(in)
		if err != nil {
			t.Errorf("parseTurkishNumber(%q) error = %v", in, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("parseTurkishNumber(%q) = %s, want %s", in, got, want)
		}
	}
}

const companyCardSnippet = `<html><body>
<table class="dataTable hover nowrap excelexport" data-csvname="temettugercek">
<thead><tr>
<th>Kod</th><th>Tarih</th><th>Toplam Brüt</th><th>Hisse Başı Brüt</th>
<th>Oran</th><th>Hisse Başı Net</th><th>Toplam Net</th><th>Dağıtma Oranı</th>
</tr></thead>
</table>
<tbody class="temettugercekvarBody gercek">
<tr class="temettugercekvarrow">
<td>THYAO</td><td>05.06.2024</td><td>1.380.000.000</td><td>1,00</td>
<td>100</td><td>0,90</td><td>1.242.000.000</td><td>15,30</td>
</tr>
<tr class="temettugercekvarrow">
<td>THYAO</td><td>20.12.2021</td><td>690.000.000</td><td>0,50</td>
<td>100</td><td>0,425</td><td>586.500.000</td><td>12,10</td>
</tr>
</tbody>
</body></html>`

func TestParseDividends(t *testing.T) {
	dividends, err := parseDividends("THYAO", []byte(companyCardSnippet))
	if err != nil {
		t.Fatalf("parseDividends() error = %v", err)
	}
	if len(dividends) != 2 {
		t.Fatalf("len(dividends) = %d, want 2", len(dividends))
	}
	// oldest first
	first := dividends[0]
	if first.Day != date.New(2021, time.December, 20) {
		t.Errorf("first Day = %s, want 2021-12-20", first.Day)
	}
	if !first.GrossPerShare.Equal(decimal.NewFromFloat(0.5)) {
		t.Errorf("first GrossPerShare = %s, want 0.5", first.GrossPerShare)
	}
	second := dividends[1]
	if !second.Total.Equal(decimal.NewFromInt(1242000000)) {
		t.Errorf("second Total = %s, want 1242000000", second.Total)
	}
	if !second.PayoutRatio.Equal(decimal.NewFromFloat(15.3)) {
		t.Errorf("second PayoutRatio = %s, want 15.3", second.PayoutRatio)
	}
}

func TestParseDividends_NoTable(t *testing.T) {
	if _, err := parseDividends("XXXX", []byte(`<html><body></body></html>`)); err == nil {
		t.Fatal("parseDividends() accepted a page without the dividend table")
	}
}

func TestMetalValid(t *testing.T) {
	if !Gold.Valid() {
		t.Error("Gold.Valid() = false")
	}
	if Metal("XAU/TRY").Valid() {
		t.Error(`Metal("XAU/TRY").Valid() = true`)
	}
}
