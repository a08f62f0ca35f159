package automaton

import (
	"fmt"
	"strings"
)

// MaxWidth is the widest supported row: one cell per bit of a uint64 seed.
const MaxWidth = 64

// Row is one generation of the automaton: a fixed-length sequence of cells
// whose first and last elements are adjacent. The length is fixed at
// construction and never changes; Next allocates a fresh Row rather than
// mutating in place.
type Row struct {
	cells []bool
}

// NewRow constructs an all-off row of k cells. Panics unless 1 <= k <= 64.
func NewRow(k int) Row {
	if k < 1 || k > MaxWidth {
		panic(fmt.Sprintf("automaton: row width %d out of range [1,%d]", k, MaxWidth))
	}
	return Row{cells: make([]bool, k)}
}

// FromSeed constructs a row of k cells from a 64-bit seed, mapping bit i of
// the seed to cell i. Panics unless 1 <= k <= 64.
func FromSeed(seed uint64, k int) Row {
	row := NewRow(k)
	for i := 0; i < k; i++ {
		row.cells[i] = seed&(1<<uint(i)) != 0
	}
	return row
}

// Len answers the number of cells.
func (a Row) Len() int { return len(a.cells) }

// Cell answers the occupancy of cell i.
func (a Row) Cell(i int) bool { return a.cells[i] }

// Toggle flips cell i in place. Only the newest generation of a history is
// ever toggled, and only while evolution is paused.
func (a Row) Toggle(i int) {
	a.cells[i] = !a.cells[i]
}

// Next computes the successor generation under the given rule. The two ends
// of the row are adjacent, so the edge cells use the same ordinal formula
// as the interior; only the index arithmetic wraps.
func (a Row) Next(rule Rule) Row {
	k := len(a.cells)
	next := Row{cells: make([]bool, k)}
	for i := 0; i < k; i++ {
		o := ordinal(a.cells[(i+1)%k], a.cells[i], a.cells[(i-1+k)%k])
		next.cells[i] = rule.Lookup(o)
	}
	return next
}

// Clone answers an independent copy of the row.
func (a Row) Clone() Row {
	c := make([]bool, len(a.cells))
	copy(c, a.cells)
	return Row{cells: c}
}

// Equal reports whether two rows have identical length and occupancy.
func (a Row) Equal(b Row) bool {
	if len(a.cells) != len(b.cells) {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}

// Bits reconstructs the seed integer from the row by summing 2^i for every
// occupied cell i. Inverse of FromSeed modulo 2^Len.
func (a Row) Bits() uint64 {
	var bits uint64
	for i, live := range a.cells {
		if live {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

// Population answers the number of occupied cells.
func (a Row) Population() int {
	n := 0
	for _, live := range a.cells {
		if live {
			n++
		}
	}
	return n
}

// String renders the row as a packed run of X (occupied) and . (vacant).
func (a Row) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Row[%d]: ", len(a.cells))
	for _, live := range a.cells {
		if live {
			b.WriteByte('X')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
