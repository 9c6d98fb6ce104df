package fsa

import (
	"cmp"
	"slices"
)

// Complement Returns a copy of a whose final states are exactly the states a does not
// accept in. Nothing else changes and no checks are made.
//
// This is the language complement only when a is deterministic and total (one
// transition per state and symbol). For any other automaton the result is not the
// complement; use ComplementLanguage instead.
func Complement[S cmp.Ordered](a *Automaton[S]) *Automaton[S] {
	finals := make([]S, 0, len(a.states))
	for i, s := range a.states {
		if !a.acceptIndex(i) {
			finals = append(finals, s)
		}
	}
	return build(a.states, a.alphabet, a.Transitions(), a.initial, finals)
}

// ComplementLanguage Returns a deterministic, total automaton accepting exactly the
// words over a's alphabet that a rejects: determinize, complete with DeadState, then
// swap final states. Epsilon elimination always uses GroupPerClosure here, whatever
// the options say, since a widened language would lose words from the complement.
func ComplementLanguage[S cmp.Ordered](a *Automaton[S], options ...Option) *DFA[string] {
	options = append(slices.Clip(options),
		WithGrouping(GroupPerClosure),
		WithCompleteness(TotalWithDeadState))
	return Determinize(a, options...).Complement()
}
