package automaton

import "fmt"

// History is an always-full ring of the last N generations. It is created
// holding exactly N rows and every mutation preserves that count: Evolve
// appends one generation and forgets the oldest. The newest entry is the
// only one that is ever edited.
type History struct {
	rows []Row // backing store, len == cap == depth
	head int   // index of the oldest generation
}

// NewHistory creates a history of depth rows of width cells each, with the
// newest generation seeded from seed and every older generation all-off.
func NewHistory(width, depth int, seed uint64) *History {
	if depth < 1 {
		panic(fmt.Sprintf("automaton: history depth %d out of range [1,∞)", depth))
	}
	rows := make([]Row, depth)
	for i := range rows {
		rows[i] = NewRow(width)
	}
	rows[depth-1] = FromSeed(seed, width)
	return &History{rows: rows}
}

// Depth answers the number of retained generations, which never changes.
func (h *History) Depth() int { return len(h.rows) }

// Width answers the number of cells per generation.
func (h *History) Width() int { return h.rows[0].Len() }

// Newest answers the most recent generation, the one Evolve advances from.
func (h *History) Newest() Row {
	return h.rows[(h.head+len(h.rows)-1)%len(h.rows)]
}

// Oldest answers the generation about to be forgotten.
func (h *History) Oldest() Row {
	return h.rows[h.head]
}

// Evolve appends the successor of the newest generation under rule,
// evicting the oldest generation.
func (h *History) Evolve(rule Rule) {
	h.rows[h.head] = h.Newest().Next(rule)
	h.head = (h.head + 1) % len(h.rows)
}

// ToggleNewest flips cell i of the newest generation.
func (h *History) ToggleNewest(i int) {
	h.Newest().Toggle(i)
}

// Each visits every retained generation in chronological order, oldest
// first, passing the window row index alongside each generation.
func (h *History) Each(fn func(row int, a Row)) {
	for i := 0; i < len(h.rows); i++ {
		fn(i, h.rows[(h.head+i)%len(h.rows)])
	}
}

// Rows answers the retained generations in chronological order as a fresh
// slice of shallow row handles.
func (h *History) Rows() []Row {
	out := make([]Row, 0, len(h.rows))
	h.Each(func(_ int, a Row) { out = append(out, a) })
	return out
}
