package fsa

import (
	"cmp"
	"log/slog"
	"maps"
	"slices"
)

// Determinize Returns a deterministic automaton accepting the same words as a, built
// by subset construction. If a has epsilon transitions they are removed first with
// EliminateEpsilon (options apply there too) and the construction runs on the result.
//
// Each DFA state is the canonical key of a set of states of the epsilon-free
// automaton, "{q0,q1}". The initial state is the key of {initial}; a set is final if
// it holds a final state. Only sets reachable from the initial set are built.
// By default symbols with no destination are left out; with
// WithCompleteness(TotalWithDeadState) they lead to DeadState.
//
// Worst case complexity: exponential in number of states.
func Determinize[S cmp.Ordered](a *Automaton[S], options ...Option) *DFA[string] {
	if a.HasEpsilon() {
		return subsetConstruction(EliminateEpsilon(a, options...), options...)
	}
	return subsetConstruction(a, options...)
}

// subsetConstruction expects an automaton without epsilon transitions.
func subsetConstruction[S cmp.Ordered](a *Automaton[S], options ...Option) *DFA[string] {
	opts := newTransformOptions(options...)

	keyOf := func(set *FrozenStateSet) string {
		return canonicalKey(a.statesAt(set.GetArray()))
	}

	initialSet := NewFrozenStateSet([]int{a.index[a.initial]})
	initialKey := keyOf(initialSet)

	newState := NewHashMap[string](WithCapacity(len(a.states)))
	newState.Set(initialSet, initialKey)
	workList := []*FrozenStateSet{initialSet}

	var states, finals []string
	delta := make(map[string]map[Symbol]string)

	for len(workList) > 0 {
		set := workList[0]
		workList = workList[1:]

		key, _ := newState.Get(set)
		states = append(states, key)

		final := false
		targets := make(map[Symbol]*StateSet)
		for _, q := range set.GetArray() {
			final = final || a.acceptIndex(q)
			row := a.transitions[a.states[q]]
			for sym, dests := range row {
				acc, ok := targets[sym]
				if !ok {
					acc = NewStateSet(len(a.states))
					targets[sym] = acc
				}
				for _, dest := range dests {
					acc.Add(a.index[dest])
				}
			}
		}

		if final {
			finals = append(finals, key)
		}

		out := make(map[Symbol]string, len(targets))
		for _, sym := range slices.Sorted(maps.Keys(targets)) {
			next := targets[sym].Freeze()
			nextKey, ok := newState.Get(next)
			if !ok {
				nextKey = keyOf(next)
				newState.Set(next, nextKey)
				workList = append(workList, next)
			}
			out[sym] = nextKey
		}
		if len(out) > 0 {
			delta[key] = out
		}
	}

	d := buildDFA(states, a.alphabet, delta, initialKey, finals)
	if opts.completeness == TotalWithDeadState && !d.IsTotal() {
		d = totalize(d, DeadState)
	}

	opts.logger.Debug("determinized automaton",
		slog.Int("states", len(a.states)),
		slog.Int("subsets", newState.Size()),
		slog.Bool("total", d.IsTotal()))

	return d
}
