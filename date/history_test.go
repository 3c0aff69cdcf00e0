package date

import (
	"slices"
	"testing"
)

func TestHistory_AppendKeepsChronologicalOrder(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2025-01-03"), 3)
	h.Append(MustParse("2025-01-01"), 1)
	h.Append(MustParse("2025-01-02"), 2)

	want := []float64{1, 2, 3}
	if got := h.Observations(); !slices.Equal(got, want) {
		t.Errorf("Observations() = %v, want %v", got, want)
	}

	prev := Date{}
	for on := range h.Values() {
		if !prev.IsZero() && !prev.Before(on) {
			t.Errorf("Values() out of order: %s then %s", prev, on)
		}
		prev = on
	}
}

func TestHistory_AppendOverwritesSameDay(t *testing.T) {
	var h History[float64]
	on := MustParse("2025-01-01")
	h.Append(on, 1)
	h.Append(on, 42)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, ok := h.Get(on); !ok || v != 42 {
		t.Errorf("Get(%s) = %v, %v, want 42, true", on, v, ok)
	}
}

func TestHistory_Latest(t *testing.T) {
	var h History[float64]
	if on, v := h.Latest(); !on.IsZero() || v != 0 {
		t.Errorf("empty Latest() = %s, %v, want zero values", on, v)
	}

	h.Append(MustParse("2025-01-02"), 2)
	h.Append(MustParse("2025-01-05"), 5)
	h.Append(MustParse("2025-01-03"), 3)

	on, v := h.Latest()
	if on != MustParse("2025-01-05") || v != 5 {
		t.Errorf("Latest() = %s, %v, want 2025-01-05, 5", on, v)
	}
}

func TestHistory_ObservationsIsACopy(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2025-01-01"), 1)

	obs := h.Observations()
	obs[0] = 99
	if v, _ := h.Get(MustParse("2025-01-01")); v != 1 {
		t.Errorf("mutating Observations() changed the history: %v", v)
	}
}
