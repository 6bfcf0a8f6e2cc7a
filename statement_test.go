package bist

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func quarters(years ...int) []Period {
	var ps []Period
	for _, y := range years {
		for _, q := range []int{3, 6, 9, 12} {
			ps = append(ps, Period{Year: y, Quarter: q})
		}
	}
	return ps
}

func setAll(s *Statement, item string, occurrence int, values map[Period]int64) {
	for p, v := range values {
		s.Set(item, "", occurrence, p, decimal.NewFromInt(v))
	}
}

func TestStatement_Discrete(t *testing.T) {
	s := NewStatement("TEST", quarters(2023))
	setAll(s, ItemRevenue, 0, map[Period]int64{
		{2023, 3}:  100,
		{2023, 6}:  250,
		{2023, 9}:  450,
		{2023, 12}: 700,
	})
	d := s.Discrete()
	want := map[Period]int64{
		{2023, 3}:  100, // first quarter kept as published
		{2023, 6}:  150,
		{2023, 9}:  200,
		{2023, 12}: 250,
	}
	for p, w := range want {
		got, err := d.Value(ItemRevenue, p)
		if err != nil {
			t.Fatalf("Value(%s) error = %v", p, err)
		}
		if !got.Equal(decimal.NewFromInt(w)) {
			t.Errorf("Value(%s) = %s, want %d", p, got, w)
		}
	}
}

func TestStatement_DiscreteSkipsGappedColumn(t *testing.T) {
	s := NewStatement("TEST", quarters(2023))
	setAll(s, ItemRevenue, 0, map[Period]int64{
		{2023, 3}: 100,
		// 6/2023 never published
		{2023, 9}: 450,
	})
	d := s.Discrete()
	if _, err := d.Value(ItemRevenue, Period{2023, 9}); !errors.Is(err, ErrLineItemUnavailable) {
		t.Errorf("Value(9/2023) error = %v, want ErrLineItemUnavailable (no predecessor to difference)", err)
	}
	if got, err := d.Value(ItemRevenue, Period{2023, 3}); err != nil || !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Value(3/2023) = %s, %v, want 100", got, err)
	}
}

func TestStatement_DuplicateItems(t *testing.T) {
	// financial debt is published under both short and long term
	// liabilities with the same description
	s := NewStatement("TEST", quarters(2023))
	p := Period{2023, 12}
	s.Set(ItemFinancialDebt, "Financial Debts", 0, p, decimal.NewFromInt(40))
	s.Set(ItemFinancialDebt, "Financial Debts", 1, p, decimal.NewFromInt(60))

	if got, err := s.Value(ItemFinancialDebt, p); err != nil || !got.Equal(decimal.NewFromInt(40)) {
		t.Errorf("Value() = %s, %v, want first occurrence 40", got, err)
	}
	if got, err := s.Sum(ItemFinancialDebt, p); err != nil || !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Sum() = %s, %v, want 100", got, err)
	}
}

func TestStatement_TTM(t *testing.T) {
	s := NewStatement("TEST", quarters(2022, 2023))
	setAll(s, ItemNetIncomeParent, 0, map[Period]int64{
		{2022, 3}: 1, {2022, 6}: 1, {2022, 9}: 1, {2022, 12}: 1,
		{2023, 3}: 10, {2023, 6}: 20, {2023, 9}: 30, {2023, 12}: 40,
	})
	got, err := s.TTM(ItemNetIncomeParent)
	if err != nil {
		t.Fatalf("TTM() error = %v", err)
	}
	if !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("TTM() = %s, want 100", got)
	}
}

func TestStatement_MissingItem(t *testing.T) {
	s := NewStatement("TEST", quarters(2023))
	if _, err := s.Latest(ItemRevenue); !errors.Is(err, ErrLineItemUnavailable) {
		t.Errorf("Latest() error = %v, want ErrLineItemUnavailable", err)
	}
	if _, err := s.TTM("Olmayan Kalem"); !errors.Is(err, ErrLineItemUnavailable) {
		t.Errorf("TTM() error = %v, want ErrLineItemUnavailable", err)
	}
}
