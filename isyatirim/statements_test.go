package isyatirim

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/borsatools/bist"
)

const maliTabloWindow = `{"value": [
  {"itemDescTr": "Dönen Varlıklar", "itemDescEng": "Current Assets",
   "value1": 4000, "value2": 3500, "value3": 3000, "value4": 2500},
  {"itemDescTr": "Finansal Borçlar", "itemDescEng": "Financial Debts",
   "value1": 40, "value2": 38, "value3": 35, "value4": 30},
  {"itemDescTr": "Finansal Borçlar", "itemDescEng": "Financial Debts",
   "value1": 60, "value2": 58, "value3": 55, "value4": 50},
  {"itemDescTr": "Satış Gelirleri", "itemDescEng": "Sales Revenue",
   "value1": 5200, "value2": 3600, "value3": 2200, "value4": null}
]}`

func TestMergeWindow(t *testing.T) {
	var content []statementRow
	if err := decodeEnvelope([]byte(maliTabloWindow), &content); err != nil {
		t.Fatalf("decodeEnvelope() error = %v", err)
	}

	window := statementWindow(2023)
	statement := bist.NewStatement("TEST", window[:])
	mergeWindow(statement, window, content)

	// value1 belongs to the newest quarter of the window
	got, err := statement.Value("Dönen Varlıklar", bist.Period{Year: 2023, Quarter: 12})
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if !got.IsPositive() || got.String() != "4000" {
		t.Errorf("Value(12/2023) = %s, want 4000", got)
	}

	// the two financial debt rows stay separate occurrences
	sum, err := statement.Sum("Finansal Borçlar", bist.Period{Year: 2023, Quarter: 12})
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	if sum.String() != "100" {
		t.Errorf("Sum(Finansal Borçlar, 12/2023) = %s, want 100", sum)
	}

	// a null quarter stays unpublished
	if _, err := statement.Value("Satış Gelirleri", bist.Period{Year: 2023, Quarter: 3}); !errors.Is(err, bist.ErrLineItemUnavailable) {
		t.Errorf("Value(null quarter) error = %v, want ErrLineItemUnavailable", err)
	}

	if s := statement.English("Satış Gelirleri"); s != "Sales Revenue" {
		t.Errorf("English() = %q, want Sales Revenue", s)
	}
}

func TestStatementRowDecoding(t *testing.T) {
	var row statementRow
	if err := json.Unmarshal([]byte(`{"itemDescTr":"Stoklar","value1":12.5,"value2":null}`), &row); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if row.Value1 == nil || row.Value1.String() != "12.5" {
		t.Errorf("Value1 = %v, want 12.5", row.Value1)
	}
	if row.Value2 != nil {
		t.Errorf("Value2 = %v, want nil", row.Value2)
	}
}
