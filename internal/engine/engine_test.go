package engine

import (
	"testing"
	"time"

	"github.com/anku308/wolfca/internal/automaton"
)

func newTestEngine() *Engine {
	return New(Options{
		Width:    30,
		Depth:    10,
		Seed:     0x34244103,
		Rule:     automaton.Rule(110),
		Period:   250 * time.Millisecond,
		Debounce: 600 * time.Millisecond,
	})
}

func TestEngineStartsPausedAndSeeded(t *testing.T) {
	e := newTestEngine()
	if e.Running() {
		t.Error("engine should start paused")
	}
	if got := e.History().Newest().Bits(); got != 0x34244103 {
		t.Errorf("newest bits = %#x, want seed", got)
	}
	res := e.Step(time.Second)
	if res.Evolved {
		t.Error("paused engine evolved")
	}
}

func TestEngineEvolvesOnPeriod(t *testing.T) {
	e := newTestEngine()
	e.TogglePause()
	res := e.Step(250 * time.Millisecond)
	if !res.Evolved {
		t.Fatal("expected evolution after one full period")
	}
	if got, want := e.History().Newest().Bits(), uint64(0x1C6CC306); got != want {
		t.Errorf("newest bits = %#x, want %#x (rule 110 step)", got, want)
	}
	if e.Generation() != 1 {
		t.Errorf("Generation() = %d, want 1", e.Generation())
	}
}

func TestEngineCoalescesHitch(t *testing.T) {
	e := newTestEngine()
	e.TogglePause()
	res := e.Step(2500 * time.Millisecond)
	if !res.Evolved || e.Generation() != 1 {
		t.Errorf("10-period frame produced %d generations, want 1", e.Generation())
	}
}

func TestRuleChangeAppliesBeforeEvolution(t *testing.T) {
	e := newTestEngine()
	e.TogglePause()
	e.PushDigit('3')
	e.PushDigit('0')
	// One frame long enough to settle the debounce and pass an evolution
	// period: the committed rule must govern this frame's evolution.
	res := e.Step(600 * time.Millisecond)
	if !res.RuleChanged {
		t.Fatal("rule did not change")
	}
	if e.Rule() != automaton.Rule(30) {
		t.Fatalf("Rule() = %v, want Rule #30", e.Rule())
	}
	if !res.Evolved {
		t.Fatal("expected evolution in the same frame")
	}
	if got, want := e.History().Newest().Bits(), uint64(0x067EE386); got != want {
		t.Errorf("newest bits = %#x, want %#x (rule 30 step)", got, want)
	}
}

func TestInvalidRuleReportsFailure(t *testing.T) {
	e := newTestEngine()
	e.PushDigit('5')
	e.PushDigit('0')
	e.PushDigit('0')
	res := e.Step(600 * time.Millisecond)
	if res.RuleChanged {
		t.Error("out-of-range code changed the rule")
	}
	if !res.RuleFailed {
		t.Error("expected RuleFailed on the settle frame")
	}
	if e.Rule() != automaton.Rule(110) {
		t.Errorf("Rule() = %v, want the original Rule #110", e.Rule())
	}
	// The failure flag is transient.
	if res := e.Step(16 * time.Millisecond); res.RuleFailed {
		t.Error("RuleFailed persisted past the settle frame")
	}
}

func TestToggleCellGatedToPause(t *testing.T) {
	e := newTestEngine()
	if !e.ToggleCell(0) {
		t.Error("toggle rejected while paused")
	}
	e.TogglePause()
	if e.ToggleCell(1) {
		t.Error("toggle accepted while running")
	}
	e.TogglePause()
	if e.ToggleCell(-1) || e.ToggleCell(30) {
		t.Error("out-of-range toggle accepted")
	}
}

func TestPopulationTracksNewestRow(t *testing.T) {
	e := New(Options{Width: 8, Depth: 3, Seed: 0, Rule: 0})
	if e.Population() != 0 {
		t.Fatalf("Population() = %d, want 0", e.Population())
	}
	e.ToggleCell(2)
	e.ToggleCell(5)
	if e.Population() != 2 {
		t.Errorf("Population() = %d, want 2", e.Population())
	}
}
