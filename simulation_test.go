package bist

import (
	"errors"
	"testing"
	"time"

	"github.com/borsatools/bist/date"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"lump-sum": LumpSum,
		"LumpSum":  LumpSum,
		"lump":     LumpSum,
		"periodic": Periodic,
		"monthly":  Periodic,
	} {
		got, err := ParseMode(in)
		if err != nil {
			t.Errorf("ParseMode(%q) error = %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseMode(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseMode("weekly"); err == nil {
		t.Error("ParseMode(weekly) accepted an unknown mode")
	}
}

func TestBuildTape_MergesEventDates(t *testing.T) {
	series := mkSeries(
		pt{date.New(2024, time.January, 2), 10, 30, 0},
		pt{date.New(2024, time.January, 15), 10, 30, 0}, // plain trading day
		pt{date.New(2024, time.February, 1), 10, 30, 2}, // contribution and dividend
		pt{date.New(2024, time.February, 12), 10, 30, 1},
		pt{date.New(2024, time.March, 29), 10, 30, 0},
	).WithNetDividends()

	tape, err := buildTape(series, Periodic)
	if err != nil {
		t.Fatalf("buildTape() error = %v", err)
	}
	want := []struct {
		day     date.Date
		contrib bool
		div     bool
	}{
		{date.New(2024, time.January, 2), true, false},
		{date.New(2024, time.February, 1), true, true},
		{date.New(2024, time.February, 12), false, true},
		{date.New(2024, time.March, 29), true, false}, // first (and last) March day
	}
	if len(tape) != len(want) {
		t.Fatalf("len(tape) = %d, want %d", len(tape), len(want))
	}
	for i, w := range want {
		ev := tape[i]
		if ev.Day != w.day || ev.Contribution != w.contrib || ev.Dividend != w.div {
			t.Errorf("tape[%d] = {%s contrib=%t div=%t}, want {%s contrib=%t div=%t}",
				i, ev.Day, ev.Contribution, ev.Dividend, w.day, w.contrib, w.div)
		}
	}
}

func TestBuildTape_LumpSumKeepsOnlyNeededDays(t *testing.T) {
	series := mkSeries(
		pt{date.New(2024, time.January, 2), 10, 30, 0},
		pt{date.New(2024, time.January, 15), 10, 30, 0},
		pt{date.New(2024, time.February, 1), 10, 30, 0},
		pt{date.New(2024, time.March, 29), 10, 30, 0},
	).WithNetDividends()

	tape, err := buildTape(series, LumpSum)
	if err != nil {
		t.Fatalf("buildTape() error = %v", err)
	}
	if len(tape) != 2 {
		t.Fatalf("len(tape) = %d, want 2", len(tape))
	}
	if !tape[0].Contribution || tape[1].Contribution {
		t.Errorf("contribution flags = %t,%t, want true,false", tape[0].Contribution, tape[1].Contribution)
	}
}

func TestBuildTape_RejectsShortSeries(t *testing.T) {
	series := mkSeries(pt{date.New(2024, time.January, 2), 10, 30, 0})
	if _, err := buildTape(series, LumpSum); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("buildTape() error = %v, want ErrInsufficientData", err)
	}
}

func TestSeries_Validate(t *testing.T) {
	t.Run("unsorted", func(t *testing.T) {
		s := mkSeries(
			pt{date.New(2024, time.February, 1), 10, 30, 0},
			pt{date.New(2024, time.January, 2), 10, 30, 0},
		)
		if err := s.Validate(); err == nil {
			t.Error("Validate() accepted an unsorted series")
		}
	})
	t.Run("duplicate day", func(t *testing.T) {
		s := mkSeries(
			pt{date.New(2024, time.January, 2), 10, 30, 0},
			pt{date.New(2024, time.January, 2), 11, 30, 0},
		)
		if err := s.Validate(); err == nil {
			t.Error("Validate() accepted a duplicate day")
		}
	})
	t.Run("bad rate", func(t *testing.T) {
		s := mkSeries(
			pt{date.New(2024, time.January, 2), 10, 0, 0},
			pt{date.New(2024, time.February, 1), 10, 30, 0},
		)
		if err := s.Validate(); err == nil {
			t.Error("Validate() accepted a zero FX rate")
		}
	})
	t.Run("negative dividend", func(t *testing.T) {
		s := mkSeries(
			pt{date.New(2024, time.January, 2), 10, 30, -1},
			pt{date.New(2024, time.February, 1), 10, 30, 0},
		)
		if err := s.Validate(); err == nil {
			t.Error("Validate() accepted a negative dividend")
		}
	})
}
