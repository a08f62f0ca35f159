package automaton

import "fmt"

// Rule is the Wolfram code for an elementary cellular automaton. Every
// uint8 is a valid code, so construction is a plain conversion.
type Rule uint8

// Lookup answers the successor state for the neighborhood with the given
// ordinal. Ordinals outside [0, 7] cannot arise from a correctly computed
// neighborhood, so they panic rather than report an error.
func (r Rule) Lookup(ordinal uint8) bool {
	if ordinal > 7 {
		panic(fmt.Sprintf("automaton: neighborhood ordinal %d out of range [0,7]", ordinal))
	}
	return r&(1<<ordinal) != 0
}

func (r Rule) String() string {
	return fmt.Sprintf("Rule #%d", uint8(r))
}

// ordinal encodes a neighborhood occupancy as its Wolfram ordinal. The
// orientation (which neighbor carries the 4 weight) is fixed by the
// verified rule 30 and rule 110 generation vectors; see row_test.go.
func ordinal(left, self, right bool) uint8 {
	var o uint8
	if left {
		o |= 4
	}
	if self {
		o |= 2
	}
	if right {
		o |= 1
	}
	return o
}
