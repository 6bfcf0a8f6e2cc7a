package date

import (
	"testing"
	"time"
)

func TestHistory_AppendKeepsOrder(t *testing.T) {
	var h History[float64]
	h.Append(New(2024, time.March, 3), 3)
	h.Append(New(2024, time.March, 1), 1)
	h.Append(New(2024, time.March, 2), 2)

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
}

func TestHistory_AppendOverwrites(t *testing.T) {
	var h History[string]
	on := New(2024, time.March, 1)
	h.Append(on, "old").Append(on, "new")
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, ok := h.Get(on); !ok || v != "new" {
		t.Errorf("Get() = %q, %v; want \"new\", true", v, ok)
	}
}

func TestHistory_Latest(t *testing.T) {
	var h History[int]
	if day, _ := h.Latest(); !day.IsZero() {
		t.Errorf("Latest() on empty history should return zero date, got %v", day)
	}
	h.Append(New(2024, time.March, 1), 1)
	h.Append(New(2024, time.March, 5), 5)
	day, v := h.Latest()
	if day != New(2024, time.March, 5) || v != 5 {
		t.Errorf("Latest() = %v, %d; want 2024-03-05, 5", day, v)
	}
}
