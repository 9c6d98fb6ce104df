// Package fsa models finite-state automata and converts nondeterministic automata,
// including ones with epsilon transitions, into deterministic automata.
//
// An Automaton is built with New or a Builder, which validate the description, and is
// immutable afterwards. The transformations never modify their input:
//
//	a, err := fsa.New(
//		[]string{"q0", "q1", "q2"},
//		[]fsa.Symbol{"0", "1"},
//		fsa.Transitions[string]{
//			"q0": {"1": {"q1"}},
//			"q1": {fsa.Epsilon: {"q2"}},
//		},
//		"q0",
//		[]string{"q2"},
//	)
//	ok, err := fsa.Accepts(a, []fsa.Symbol{"1"}) // true
//	free := fsa.EliminateEpsilon(a)              // states "{q0}", "{q1,q2}"
//	dfa := fsa.Determinize(a)
//
// Merged states are named by their sorted member list, so the same set of original
// states always gets the same name.
package fsa
