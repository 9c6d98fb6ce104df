package fsa

import (
	"cmp"
	"maps"
	"slices"
)

// Validate Checks that an automaton description is well formed. The checks run in a
// fixed order and the first violation is returned as *InvalidReferenceError:
//
//  1. the initial state is declared in states
//  2. the alphabet does not declare Epsilon
//  3. every transition source, symbol (other than Epsilon) and destination is declared,
//     visiting sources and symbols in ascending order
//  4. every final state is declared in states
//
// Nothing is repaired; an invalid description is rejected as a whole.
func Validate[S cmp.Ordered](states []S, alphabet []Symbol, transitions Transitions[S], initial S, finals []S) error {
	declared := make(map[S]struct{}, len(states))
	for _, s := range states {
		declared[s] = struct{}{}
	}
	sigma := make(map[Symbol]struct{}, len(alphabet))
	for _, sym := range alphabet {
		sigma[sym] = struct{}{}
	}

	if _, ok := declared[initial]; !ok {
		return &InvalidReferenceError{Element: initial, Set: SetStates}
	}

	if _, ok := sigma[Epsilon]; ok {
		return &InvalidReferenceError{Element: Epsilon, Set: SetAlphabet, Reason: Reserved}
	}

	for _, source := range slices.Sorted(maps.Keys(transitions)) {
		if _, ok := declared[source]; !ok {
			return &InvalidReferenceError{Element: source, Set: SetStates}
		}
		row := transitions[source]
		for _, sym := range slices.Sorted(maps.Keys(row)) {
			if _, ok := sigma[sym]; !ok && sym != Epsilon {
				return &InvalidReferenceError{Element: sym, Set: SetAlphabet}
			}
			for _, dest := range row[sym] {
				if _, ok := declared[dest]; !ok {
					return &InvalidReferenceError{Element: dest, Set: SetStates}
				}
			}
		}
	}

	for _, f := range sortedUnique(finals) {
		if _, ok := declared[f]; !ok {
			return &InvalidReferenceError{Element: f, Set: SetStates}
		}
	}
	return nil
}
