// Package automaton implements a one-dimensional, two-state, circular
// cellular automaton under the Wolfram coding scheme.
//
// A [Rule] is an 8-bit Wolfram code: bit n holds the successor state for
// the 3-cell neighborhood whose ordinal is n, where
//
//	ordinal = 4*left + 2*self + 1*right
//
// A [Row] is a fixed-length ring of cells (the two ends are adjacent), and
// a [History] is an always-full window over the last N generations:
//
//	row := automaton.FromSeed(0x34244103, 30)
//	next := row.Next(automaton.Rule(110))
//
// All operations are deterministic and total over their valid domains;
// constructor preconditions (row length, ordinal range) panic when violated.
package automaton
