package fsa

import (
	"cmp"

	"github.com/bits-and-blooms/bitset"
)

// Accepts Returns true if a accepts input. Every symbol of input must be declared in
// the alphabet, otherwise *UndeclaredSymbolError is returned before any search.
//
// The empty input is always accepted, whether or not the initial state is final.
//
// Otherwise the search is breadth first over (position, state) configurations starting
// at (0, initial). Epsilon transitions keep the position, symbol transitions advance
// it. A configuration is enqueued at most once, which bounds the search on cyclic
// automata to (len(input)+1) * states steps. The first configuration at the end of
// input whose state is final accepts.
func Accepts[S cmp.Ordered](a *Automaton[S], input []Symbol) (bool, error) {
	for _, sym := range input {
		if !a.HasSymbol(sym) {
			return false, &UndeclaredSymbolError{Symbol: sym}
		}
	}
	if len(input) == 0 {
		return true, nil
	}

	numStates := len(a.states)
	seen := bitset.New(uint((len(input) + 1) * numStates))

	type config struct {
		pos   int
		state int
	}
	workList := make([]config, 0, numStates)
	enqueue := func(pos int, dest S) {
		c := config{pos: pos, state: a.index[dest]}
		bit := uint(c.pos*numStates + c.state)
		if seen.Test(bit) {
			return
		}
		seen.Set(bit)
		workList = append(workList, c)
	}
	enqueue(0, a.initial)

	for len(workList) > 0 {
		c := workList[0]
		workList = workList[1:]

		if c.pos == len(input) && a.acceptIndex(c.state) {
			return true, nil
		}

		row := a.transitions[a.states[c.state]]
		for _, dest := range row[Epsilon] {
			enqueue(c.pos, dest)
		}
		if c.pos < len(input) {
			for _, dest := range row[input[c.pos]] {
				enqueue(c.pos+1, dest)
			}
		}
	}
	return false, nil
}
