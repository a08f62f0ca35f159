package automaton

import "testing"

func TestHistoryStartsFull(t *testing.T) {
	h := NewHistory(30, 50, 0x34244103)
	if h.Depth() != 50 {
		t.Fatalf("Depth() = %d, want 50", h.Depth())
	}
	if got := len(h.Rows()); got != 50 {
		t.Fatalf("len(Rows()) = %d, want 50", got)
	}
	if got := h.Newest().Bits(); got != 0x34244103 {
		t.Errorf("Newest().Bits() = %#x, want %#x", got, 0x34244103)
	}
	// Everything older than the seed row starts vacant.
	h.Each(func(row int, a Row) {
		if row < h.Depth()-1 && a.Population() != 0 {
			t.Errorf("row %d not vacant at creation: %v", row, a)
		}
	})
}

func TestHistoryStaysFull(t *testing.T) {
	h := NewHistory(16, 10, 1)
	for i := 0; i < 37; i++ {
		h.Evolve(Rule(110))
		if got := len(h.Rows()); got != 10 {
			t.Fatalf("after %d evolutions len(Rows()) = %d, want 10", i+1, got)
		}
	}
}

func TestHistoryEvolveAdvancesNewest(t *testing.T) {
	h := NewHistory(30, 5, 0x34244103)
	h.Evolve(Rule(110))
	if got, want := h.Newest().Bits(), uint64(0x1C6CC306); got != want {
		t.Errorf("Newest().Bits() = %#x, want %#x", got, want)
	}
	// The previous newest is now second from the tail.
	rows := h.Rows()
	if got := rows[len(rows)-2].Bits(); got != 0x34244103 {
		t.Errorf("previous generation bits = %#x, want %#x", got, 0x34244103)
	}
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(8, 3, 0b1)
	seen := []uint64{h.Newest().Bits()}
	for i := 0; i < 3; i++ {
		h.Evolve(Rule(206))
		seen = append(seen, h.Newest().Bits())
	}
	// Depth 3 window over 4 generations: the original seed is gone and the
	// window holds the last three, oldest first.
	rows := h.Rows()
	for i, a := range rows {
		if got, want := a.Bits(), seen[i+1]; got != want {
			t.Errorf("row %d bits = %#x, want %#x", i, got, want)
		}
	}
	if h.Oldest().Bits() != seen[1] {
		t.Errorf("Oldest() = %#x, want %#x", h.Oldest().Bits(), seen[1])
	}
}

func TestHistoryToggleNewest(t *testing.T) {
	h := NewHistory(8, 4, 0)
	h.ToggleNewest(5)
	if got := h.Newest().Bits(); got != 1<<5 {
		t.Errorf("Newest().Bits() = %#x, want %#x", got, uint64(1<<5))
	}
	// Older rows are untouched.
	h.Each(func(row int, a Row) {
		if row < h.Depth()-1 && a.Population() != 0 {
			t.Errorf("row %d affected by ToggleNewest: %v", row, a)
		}
	})
}

func TestHistoryEachOrder(t *testing.T) {
	h := NewHistory(8, 4, 1)
	want := 0
	h.Each(func(row int, _ Row) {
		if row != want {
			t.Errorf("Each visited row %d, want %d", row, want)
		}
		want++
	})
	if want != 4 {
		t.Errorf("Each visited %d rows, want 4", want)
	}
}
