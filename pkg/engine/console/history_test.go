package console

import "testing"

func TestHistoryEmptyRecallIsNoop(t *testing.T) {
	h := NewHistory(HistoryLimit)
	if _, ok := h.Up(); ok {
		t.Error("Up on empty history returned an entry")
	}
	if _, ok := h.Down(); ok {
		t.Error("Down on empty history returned an entry")
	}
}

func TestHistoryMostRecentFirst(t *testing.T) {
	h := NewHistory(HistoryLimit)
	h.Push("first")
	h.Push("second")

	if s, _ := h.Up(); s != "second" {
		t.Errorf("first Up = %q, want %q", s, "second")
	}
	if s, _ := h.Up(); s != "first" {
		t.Errorf("second Up = %q, want %q", s, "first")
	}
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		h.Push(s)
	}
	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	// Walk the whole ring; "a" must be gone.
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		s, _ := h.Up()
		seen[s] = true
	}
	if seen["a"] {
		t.Error("evicted entry still reachable")
	}
	if !seen["d"] {
		t.Error("newest entry not reachable")
	}
}

func TestHistoryCursorWrapsUp(t *testing.T) {
	h := NewHistory(HistoryLimit)
	entries := []string{"one", "two", "three"}
	for _, s := range entries {
		h.Push(s)
	}

	first, _ := h.Up()
	// Advancing through all N entries returns to the first-recalled one.
	var s string
	for i := 0; i < len(entries); i++ {
		s, _ = h.Up()
	}
	if s != first {
		t.Errorf("after N more Ups got %q, want wrap back to %q", s, first)
	}
}

func TestHistoryCursorWrapsDown(t *testing.T) {
	h := NewHistory(HistoryLimit)
	h.Push("oldest")
	h.Push("middle")
	h.Push("newest")

	// Down from the reset cursor wraps to the oldest entry, not a
	// negative index.
	if s, ok := h.Down(); !ok || s != "oldest" {
		t.Fatalf("Down from rest = %q, %v; want %q", s, ok, "oldest")
	}
	// Further Downs keep moving newer.
	if s, _ := h.Down(); s != "middle" {
		t.Errorf("second Down = %q, want %q", s, "middle")
	}
	if s, _ := h.Down(); s != "newest" {
		t.Errorf("third Down = %q, want %q", s, "newest")
	}
	h.ResetCursor()
	if s, _ := h.Up(); s != "newest" {
		t.Errorf("Up after reset = %q, want %q", s, "newest")
	}
}
