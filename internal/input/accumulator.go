// Package input buffers user-typed rule digits behind a debounce timer.
package input

import (
	"fmt"
	"strconv"
	"time"

	"github.com/anku308/wolfca/internal/automaton"
)

// DefaultDebounce is how long the accumulator waits after the last digit
// before treating the buffer as a complete rule code.
const DefaultDebounce = 600 * time.Millisecond

// maxDigits bounds the buffer: 255 is the largest rule code, so a fourth
// digit can never form a valid code and voids the whole attempt.
const maxDigits = 3

// attempt is the accumulating state: the buffer and its timer exist
// together or not at all.
type attempt struct {
	buf       string
	remaining time.Duration
	expired   bool
}

// RuleAccumulator collects decimal digits into a candidate rule code. Each
// digit restarts the debounce timer; when the timer settles, Resolve parses
// the buffer exactly once.
type RuleAccumulator struct {
	debounce time.Duration
	pending  *attempt
}

// NewRuleAccumulator creates an idle accumulator. A non-positive debounce
// falls back to DefaultDebounce.
func NewRuleAccumulator(debounce time.Duration) *RuleAccumulator {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &RuleAccumulator{debounce: debounce}
}

// PushDigit appends a decimal digit to the current attempt, restarting the
// debounce timer. A digit beyond the third discards the attempt entirely;
// the next digit then starts a fresh one.
func (ra *RuleAccumulator) PushDigit(d byte) {
	if d < '0' || d > '9' {
		panic(fmt.Sprintf("input: %q is not a decimal digit", d))
	}
	switch {
	case ra.pending == nil:
		ra.pending = &attempt{buf: string(d), remaining: ra.debounce}
	case len(ra.pending.buf) < maxDigits:
		ra.pending.buf += string(d)
		ra.pending.remaining = ra.debounce
		ra.pending.expired = false
	default:
		ra.pending = nil
	}
}

// Tick advances the debounce timer by elapsed. It never emits anything
// itself; Resolve observes the expiry.
func (ra *RuleAccumulator) Tick(elapsed time.Duration) {
	if ra.pending == nil || ra.pending.expired {
		return
	}
	ra.pending.remaining -= elapsed
	if ra.pending.remaining <= 0 {
		ra.pending.expired = true
	}
}

// Resolve answers the newly settled rule, if any. It reports a rule only on
// the cycle where the debounce timer expired and the buffer parses to a
// value in [0, 255]; an out-of-range buffer yields ok == false. Either way
// the accumulator returns to idle.
func (ra *RuleAccumulator) Resolve() (rule automaton.Rule, ok bool) {
	if ra.pending == nil || !ra.pending.expired {
		return 0, false
	}
	buf := ra.pending.buf
	ra.pending = nil
	code, err := strconv.ParseUint(buf, 10, 8)
	if err != nil {
		return 0, false
	}
	return automaton.Rule(code), true
}

// Buffered answers the in-progress digits for live display, and whether an
// attempt is active at all.
func (ra *RuleAccumulator) Buffered() (string, bool) {
	if ra.pending == nil {
		return "", false
	}
	return ra.pending.buf, true
}

// Valid reports whether the buffered digits currently parse to a legal rule
// code. Idle accumulators are vacuously valid.
func (ra *RuleAccumulator) Valid() bool {
	if ra.pending == nil {
		return true
	}
	_, err := strconv.ParseUint(ra.pending.buf, 10, 8)
	return err == nil
}
