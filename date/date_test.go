package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		err  bool
	}{
		{"2023-10-25", New(2023, time.October, 25), false},
		{"2023-1-5", New(2023, time.January, 5), false},
		{"25-10-2023", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("Parse(%q) error = %v, want err=%v", tt.in, err, tt.err)
			continue
		}
		if !tt.err && got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLayout(t *testing.T) {
	got, err := ParseLayout("02-01-2006", "25-10-2020")
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	if want := New(2020, time.October, 25); got != want {
		t.Errorf("ParseLayout() = %v, want %v", got, want)
	}
}

func TestNewRange(t *testing.T) {
	from := New(2022, time.March, 1)
	to := New(2022, time.March, 31)
	r, err := NewRange(from, to)
	if err != nil {
		t.Fatalf("NewRange() error = %v", err)
	}
	if !r.Contains(New(2022, time.March, 15)) {
		t.Error("Contains() should include a mid-range day")
	}
	if !r.Contains(from) || !r.Contains(to) {
		t.Error("Contains() should include the bounds")
	}
	if r.Contains(New(2022, time.April, 1)) {
		t.Error("Contains() should exclude days after the range")
	}
	if got := r.Days(); got != 31 {
		t.Errorf("Days() = %d, want 31", got)
	}

	if _, err := NewRange(to, from); err == nil {
		t.Error("NewRange() with reversed bounds should fail")
	}
}

func TestMonthOf(t *testing.T) {
	a := MonthOf(New(2021, time.December, 3))
	b := MonthOf(New(2021, time.December, 22))
	if a != b {
		t.Errorf("MonthOf() should group days of the same month: %v != %v", a, b)
	}
	c := MonthOf(New(2022, time.December, 3))
	if a == c {
		t.Error("MonthOf() must separate the same month of different years")
	}
}

func TestFromUnix(t *testing.T) {
	// 2021-12-23 00:00:00 UTC
	if got, want := FromUnix(1640217600), New(2021, time.December, 23); got != want {
		t.Errorf("FromUnix() = %v, want %v", got, want)
	}
}
