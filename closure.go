package fsa

import "cmp"

// Closure Returns the epsilon closure of state: state itself plus every state reachable
// through zero or more epsilon transitions, in ascending order. A state is marked
// seen before it is pushed, so epsilon cycles and self-loops are expanded once.
// A state that a does not declare is returned alone.
func Closure[S cmp.Ordered](a *Automaton[S], state S) []S {
	start, ok := a.index[state]
	if !ok {
		return []S{state}
	}
	seen := a.closureIndices(start)
	members := make([]S, 0, len(seen))
	for _, i := range seen {
		members = append(members, a.states[i])
	}
	return members
}

// closureIndices returns the closure of the state at index start as ascending indices.
func (a *Automaton[S]) closureIndices(start int) []int {
	seen := NewStateSet(len(a.states))
	seen.Add(start)
	if !a.hasEpsilon {
		return seen.GetArray()
	}

	workList := []int{start}
	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]

		for _, dest := range a.transitions[a.states[s]][Epsilon] {
			d := a.index[dest]
			if seen.Add(d) {
				workList = append(workList, d)
			}
		}
	}
	return seen.GetArray()
}
