// Package engine owns the per-frame state of the automaton lab: the
// generation history, the active rule, the rule-entry accumulator and the
// evolution clock. The frame driver calls the input methods as events
// arrive and then Step exactly once per frame; nothing here is safe for
// concurrent use.
package engine

import (
	"time"

	"github.com/anku308/wolfca/internal/automaton"
	"github.com/anku308/wolfca/internal/input"
)

// Engine threads the state that the original design kept as ambient
// singletons through one explicit struct.
type Engine struct {
	history *automaton.History
	rule    automaton.Rule
	acc     *input.RuleAccumulator
	clock   *Clock

	generation uint64
}

// Options fixes the dimensions and timings of a new Engine.
type Options struct {
	Width    int
	Depth    int
	Seed     uint64
	Rule     automaton.Rule
	Period   time.Duration
	Debounce time.Duration
}

// New creates an engine with a fully populated history window: the seed row
// as the newest generation and vacant rows behind it. Evolution starts
// paused.
func New(opts Options) *Engine {
	return &Engine{
		history: automaton.NewHistory(opts.Width, opts.Depth, opts.Seed),
		rule:    opts.Rule,
		acc:     input.NewRuleAccumulator(opts.Debounce),
		clock:   NewClock(opts.Period),
	}
}

// StepResult reports what a frame changed, so the render layer knows what
// to refresh.
type StepResult struct {
	Evolved     bool
	RuleChanged bool
	RuleFailed  bool
}

// Step runs one frame: tick the debounce timer, commit any settled rule,
// then tick the evolution clock and evolve at most one generation. Input
// events must already have been delivered for this frame.
func (e *Engine) Step(elapsed time.Duration) StepResult {
	var res StepResult

	_, wasActive := e.acc.Buffered()
	e.acc.Tick(elapsed)
	rule, ok := e.acc.Resolve()
	_, stillActive := e.acc.Buffered()
	switch {
	case ok:
		e.rule = rule
		res.RuleChanged = true
	case wasActive && !stillActive:
		// The attempt settled this frame but did not parse to [0, 255];
		// surface a transient error instead of a rule change.
		res.RuleFailed = true
	}

	e.clock.Tick(elapsed, func() {
		e.history.Evolve(e.rule)
		e.generation++
		res.Evolved = true
	})
	return res
}

// PushDigit feeds one typed decimal digit to the rule accumulator.
func (e *Engine) PushDigit(d byte) { e.acc.PushDigit(d) }

// TogglePause flips automatic evolution on or off.
func (e *Engine) TogglePause() { e.clock.Toggle() }

// Running reports whether automatic evolution is active.
func (e *Engine) Running() bool { return e.clock.Running() }

// ToggleCell flips cell i of the newest generation. Editing is only
// available while evolution is paused; calls while running are ignored and
// reported false.
func (e *Engine) ToggleCell(i int) bool {
	if e.clock.Running() {
		return false
	}
	if i < 0 || i >= e.history.Width() {
		return false
	}
	e.history.ToggleNewest(i)
	return true
}

// Rule answers the active rule.
func (e *Engine) Rule() automaton.Rule { return e.rule }

// History answers the generation window for rendering. Callers must not
// retain it across frames they also mutate.
func (e *Engine) History() *automaton.History { return e.history }

// Buffered answers the in-progress rule digits, if any.
func (e *Engine) Buffered() (string, bool) { return e.acc.Buffered() }

// BufferValid reports whether the in-progress digits still parse to a
// legal rule code; the UI restyles the entry live as it goes bad.
func (e *Engine) BufferValid() bool { return e.acc.Valid() }

// Generation answers how many times the automaton has evolved.
func (e *Engine) Generation() uint64 { return e.generation }

// Population answers the live-cell count of the newest generation.
func (e *Engine) Population() int { return e.history.Newest().Population() }
