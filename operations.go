package fsa

import (
	"cmp"

	"github.com/bits-and-blooms/bitset"
)

// Renumber Returns a copy of a whose states are 0..n-1 in the order of a's states.
func Renumber[S cmp.Ordered](a *Automaton[S]) *Automaton[int] {
	b := NewBuilder[int]()
	copyStates(b, a, 0)
	b.SetInitial(a.index[a.initial])
	return b.finish()
}

// copyStates adds a's states to b as offset..offset+n-1, with their transitions and
// accept flags, and declares a's alphabet.
func copyStates[S cmp.Ordered](b *Builder[int], a *Automaton[S], offset int) {
	b.AddSymbol(a.alphabet...)
	for i, s := range a.states {
		b.AddState(offset + i)
		if a.acceptIndex(i) {
			b.SetAccept(offset+i, true)
		}
		for sym, dests := range a.transitions[s] {
			for _, dest := range dests {
				b.AddTransition(offset+i, sym, offset+a.index[dest])
			}
		}
	}
}

// Union Returns an automaton accepting the words accepted by any of as. A new initial
// state 0 has an epsilon transition to each operand's initial state.
func Union[S cmp.Ordered](as ...*Automaton[S]) *Automaton[int] {
	b := NewBuilder[int]()
	b.AddState(0)
	b.SetInitial(0)

	// Copy over all automata
	stateOffset := 1
	for _, a := range as {
		copyStates(b, a, stateOffset)
		b.AddEpsilon(0, stateOffset+a.index[a.initial])
		stateOffset += a.GetNumStates()
	}
	return b.finish()
}

// Concatenate Returns an automaton accepting every word made of one word from each of
// as, in order. Final states of each operand get an epsilon transition to the next
// operand's initial state and only the last operand's final states stay final.
// With no operands the result accepts only the empty word.
func Concatenate[S cmp.Ordered](as ...*Automaton[S]) *Automaton[int] {
	if len(as) == 0 {
		return defaultAutomata.MakeEmptyString()
	}

	b := NewBuilder[int]()
	offsets := make([]int, len(as))
	stateOffset := 0
	for i, a := range as {
		offsets[i] = stateOffset
		copyStates(b, a, stateOffset)
		stateOffset += a.GetNumStates()
	}
	b.SetInitial(offsets[0] + as[0].index[as[0].initial])

	// Link accept states of each operand to the initial state of the next one:
	for i := 0; i < len(as)-1; i++ {
		a, next := as[i], as[i+1]
		nextInitial := offsets[i+1] + next.index[next.initial]
		for s, ok := a.isAccept.NextSet(0); ok; s, ok = a.isAccept.NextSet(s + 1) {
			b.AddEpsilon(offsets[i]+int(s), nextInitial)
			b.SetAccept(offsets[i]+int(s), false)
		}
	}
	return b.finish()
}

// Repeat Returns an automaton accepting zero or more repetitions of words of a
// (Kleene star).
func Repeat[S cmp.Ordered](a *Automaton[S]) *Automaton[int] {
	b := NewBuilder[int]()
	b.AddState(0)
	b.SetInitial(0)
	b.SetAccept(0, true)
	copyStates(b, a, 1)
	b.AddEpsilon(0, 1+a.index[a.initial])

	for s, ok := a.isAccept.NextSet(0); ok; s, ok = a.isAccept.NextSet(s + 1) {
		b.AddEpsilon(1+int(s), 0)
	}
	return b.finish()
}

// Optional Returns an automaton accepting the empty word and every word of a.
func Optional[S cmp.Ordered](a *Automaton[S]) *Automaton[int] {
	b := NewBuilder[int]()
	b.AddState(0)
	b.SetInitial(0)
	b.SetAccept(0, true)
	copyStates(b, a, 1)
	b.AddEpsilon(0, 1+a.index[a.initial])
	return b.finish()
}

// IsEmpty Returns true if no final state is reachable from the initial state, i.e. a
// accepts no word along any path. This looks at paths only and so does not apply the
// empty-input rule of Accepts.
func IsEmpty[S cmp.Ordered](a *Automaton[S]) bool {
	start := a.index[a.initial]
	if a.acceptIndex(start) {
		return false
	}

	seen := bitset.New(uint(len(a.states)))
	seen.Set(uint(start))
	workList := []int{start}
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		if a.acceptIndex(state) {
			return false
		}
		for _, dests := range a.transitions[a.states[state]] {
			for _, dest := range dests {
				d := uint(a.index[dest])
				if !seen.Test(d) {
					seen.Set(d)
					workList = append(workList, int(d))
				}
			}
		}
	}
	return true
}
