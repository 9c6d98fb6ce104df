package fsa

import (
	"cmp"
	"log/slog"
)

// EliminateEpsilon Returns an automaton without epsilon transitions whose states are
// macro-states: groups of a's states named by their sorted member list (see
// canonicalKey). The input is not modified.
//
// With the default GroupOverlapping, every closure of more than one state is merged
// with every other closure it intersects; states whose closure is only themselves stay
// alone. A macro-state has a transition on symbol x to the macro-state of every q'
// with (q, x) -> q' for some member q, it is final if any member is final, and the
// initial macro-state is the one holding a's initial state.
//
// Merging states that epsilon connects in one direction only can add words to the
// language; use WithGrouping(GroupPerClosure) where that matters.
func EliminateEpsilon[S cmp.Ordered](a *Automaton[S], options ...Option) *Automaton[string] {
	opts := newTransformOptions(options...)

	numStates := len(a.states)
	closures := make([][]int, numStates)
	for i := range numStates {
		closures[i] = a.closureIndices(i)
	}

	var groups [][]int
	var groupOf []int
	switch opts.grouping {
	case GroupPerClosure:
		groups, groupOf = groupPerClosure(closures)
	default:
		groups, groupOf = groupOverlapping(closures)
	}

	keys := make([]string, len(groups))
	for g, members := range groups {
		keys[g] = canonicalKey(a.statesAt(members))
	}

	b := NewBuilder[string]()
	b.AddState(keys...)
	b.AddSymbol(a.alphabet...)
	b.SetInitial(keys[groupOf[a.index[a.initial]]])

	for g, members := range groups {
		for _, q := range members {
			if a.acceptIndex(q) {
				b.SetAccept(keys[g], true)
			}
			row := a.transitions[a.states[q]]
			for _, sym := range a.symbolsFrom(a.states[q]) {
				if sym == Epsilon {
					continue
				}
				for _, dest := range row[sym] {
					b.AddTransition(keys[g], sym, keys[groupOf[a.index[dest]]])
				}
			}
		}
	}

	opts.logger.Debug("eliminated epsilon transitions",
		slog.Int("states", numStates),
		slog.Int("macroStates", len(groups)),
		slog.Int("grouping", int(opts.grouping)))

	return b.finish()
}

// groupOverlapping unions the members of every closure larger than one state.
// Groups come out in order of their smallest member, members ascending.
func groupOverlapping(closures [][]int) ([][]int, []int) {
	ds := newDisjointSet(len(closures))
	for i, closure := range closures {
		if len(closure) > 1 {
			for _, j := range closure {
				ds.union(i, j)
			}
		}
	}

	groupOf := make([]int, len(closures))
	byRoot := make(map[int]int)
	var groups [][]int
	for i := range closures {
		root := ds.find(i)
		g, ok := byRoot[root]
		if !ok {
			g = len(groups)
			byRoot[root] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
		groupOf[i] = g
	}
	return groups, groupOf
}

// groupPerClosure makes one group per distinct closure; groupOf[i] is the group of
// closure(i), which always contains i.
func groupPerClosure(closures [][]int) ([][]int, []int) {
	seen := NewHashMap[int](WithCapacity(len(closures)))
	groupOf := make([]int, len(closures))
	var groups [][]int
	for i, closure := range closures {
		key := NewFrozenStateSet(closure)
		g, ok := seen.Get(key)
		if !ok {
			g = len(groups)
			seen.Set(key, g)
			groups = append(groups, closure)
		}
		groupOf[i] = g
	}
	return groups, groupOf
}

// statesAt maps ascending indices to their states, which are then also ascending.
func (a *Automaton[S]) statesAt(indices []int) []S {
	out := make([]S, len(indices))
	for k, i := range indices {
		out[k] = a.states[i]
	}
	return out
}

type disjointSet struct {
	parent []int
}

func newDisjointSet(n int) *disjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &disjointSet{parent: parent}
}

func (d *disjointSet) find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}
	return i
}

func (d *disjointSet) union(i, j int) {
	ri, rj := d.find(i), d.find(j)
	if ri == rj {
		return
	}
	if ri < rj {
		d.parent[rj] = ri
	} else {
		d.parent[ri] = rj
	}
}
