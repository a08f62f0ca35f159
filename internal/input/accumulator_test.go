package input

import (
	"testing"
	"time"

	"github.com/anku308/wolfca/internal/automaton"
)

func push(t *testing.T, ra *RuleAccumulator, digits string) {
	t.Helper()
	for i := 0; i < len(digits); i++ {
		ra.PushDigit(digits[i])
	}
}

func TestHappyPath(t *testing.T) {
	ra := NewRuleAccumulator(600 * time.Millisecond)
	push(t, ra, "206")

	if buf, ok := ra.Buffered(); !ok || buf != "206" {
		t.Fatalf("Buffered() = %q, %v, want \"206\", true", buf, ok)
	}

	ra.Tick(600 * time.Millisecond)
	rule, ok := ra.Resolve()
	if !ok || rule != automaton.Rule(206) {
		t.Fatalf("Resolve() = %v, %v, want Rule #206, true", rule, ok)
	}
	if _, active := ra.Buffered(); active {
		t.Error("buffer not cleared after resolve")
	}
}

func TestResolveFiresOnce(t *testing.T) {
	ra := NewRuleAccumulator(600 * time.Millisecond)
	push(t, ra, "30")
	ra.Tick(time.Second)
	if _, ok := ra.Resolve(); !ok {
		t.Fatal("expected a rule on the expiry cycle")
	}
	ra.Tick(time.Second)
	if _, ok := ra.Resolve(); ok {
		t.Error("Resolve emitted a second rule from the same attempt")
	}
}

func TestDigitRestartsDebounce(t *testing.T) {
	ra := NewRuleAccumulator(600 * time.Millisecond)
	ra.PushDigit('1')
	ra.Tick(500 * time.Millisecond)
	ra.PushDigit('1')
	// 500ms after the second digit the original deadline has long passed,
	// but the restarted timer has not.
	ra.Tick(500 * time.Millisecond)
	if _, ok := ra.Resolve(); ok {
		t.Fatal("resolved before the restarted debounce settled")
	}
	ra.Tick(100 * time.Millisecond)
	rule, ok := ra.Resolve()
	if !ok || rule != automaton.Rule(11) {
		t.Errorf("Resolve() = %v, %v, want Rule #11, true", rule, ok)
	}
}

func TestOverflowDiscardsAttempt(t *testing.T) {
	ra := NewRuleAccumulator(600 * time.Millisecond)
	push(t, ra, "1234")
	if _, active := ra.Buffered(); active {
		t.Fatal("fourth digit should void the attempt")
	}
	ra.Tick(time.Second)
	if _, ok := ra.Resolve(); ok {
		t.Fatal("voided attempt still resolved")
	}

	// A fifth digit begins a fresh attempt.
	ra.PushDigit('5')
	if buf, ok := ra.Buffered(); !ok || buf != "5" {
		t.Fatalf("Buffered() = %q, %v, want \"5\", true", buf, ok)
	}
	ra.Tick(600 * time.Millisecond)
	rule, ok := ra.Resolve()
	if !ok || rule != automaton.Rule(5) {
		t.Errorf("Resolve() = %v, %v, want Rule #5, true", rule, ok)
	}
}

func TestValueOutOfRange(t *testing.T) {
	ra := NewRuleAccumulator(600 * time.Millisecond)
	push(t, ra, "500")
	if ra.Valid() {
		t.Error("Valid() = true for buffered \"500\"")
	}
	ra.Tick(600 * time.Millisecond)
	if _, ok := ra.Resolve(); ok {
		t.Fatal("value 500 resolved to a rule")
	}
	if _, active := ra.Buffered(); active {
		t.Error("buffer not cleared after failed parse")
	}
}

func TestValidWhileAccumulating(t *testing.T) {
	ra := NewRuleAccumulator(600 * time.Millisecond)
	if !ra.Valid() {
		t.Error("idle accumulator should be valid")
	}
	push(t, ra, "25")
	if !ra.Valid() {
		t.Error("\"25\" should be valid")
	}
	ra.PushDigit('6')
	if ra.Valid() {
		t.Error("\"256\" should be invalid")
	}
}

func TestNonDigitPanics(t *testing.T) {
	ra := NewRuleAccumulator(0)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-digit input")
		}
	}()
	ra.PushDigit('a')
}
