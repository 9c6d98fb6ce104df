package fsa

import (
	"cmp"
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// DFA A deterministic automaton: every (state, symbol) pair has at most one destination
// and there are no epsilon transitions. The transition function may be partial; a
// missing pair rejects. Like Automaton, a DFA is immutable once built.
type DFA[S cmp.Ordered] struct {
	states []S
	index  map[S]int

	alphabet []Symbol
	symbols  map[Symbol]struct{}

	delta map[S]map[Symbol]S

	initial  S
	isAccept *bitset.BitSet
}

// NewDFA Validates the description like New, additionally rejecting Epsilon as a
// transition label, and builds the automaton.
func NewDFA[S cmp.Ordered](states []S, alphabet []Symbol, delta map[S]map[Symbol]S, initial S, finals []S) (*DFA[S], error) {
	if err := Validate(states, alphabet, asTransitions(delta), initial, finals); err != nil {
		return nil, err
	}
	for _, row := range delta {
		if _, ok := row[Epsilon]; ok {
			return nil, &InvalidReferenceError{Element: Epsilon, Set: SetAlphabet, Reason: Reserved}
		}
	}
	return buildDFA(states, alphabet, delta, initial, finals), nil
}

func asTransitions[S cmp.Ordered](delta map[S]map[Symbol]S) Transitions[S] {
	transitions := make(Transitions[S], len(delta))
	for source, row := range delta {
		transitions[source] = make(map[Symbol][]S, len(row))
		for sym, dest := range row {
			transitions[source][sym] = []S{dest}
		}
	}
	return transitions
}

func buildDFA[S cmp.Ordered](states []S, alphabet []Symbol, delta map[S]map[Symbol]S, initial S, finals []S) *DFA[S] {
	d := &DFA[S]{
		states:   sortedUnique(states),
		alphabet: sortedUnique(alphabet),
		symbols:  make(map[Symbol]struct{}, len(alphabet)),
		delta:    make(map[S]map[Symbol]S, len(delta)),
		initial:  initial,
	}
	d.index = make(map[S]int, len(d.states))
	for i, s := range d.states {
		d.index[s] = i
	}
	for _, sym := range d.alphabet {
		d.symbols[sym] = struct{}{}
	}
	for source, row := range delta {
		if len(row) > 0 {
			d.delta[source] = maps.Clone(row)
		}
	}
	d.isAccept = bitset.New(uint(len(d.states)))
	for _, f := range finals {
		d.isAccept.Set(uint(d.index[f]))
	}
	return d
}

// States Returns the states in ascending order.
func (d *DFA[S]) States() []S {
	return slices.Clone(d.states)
}

func (d *DFA[S]) GetNumStates() int {
	return len(d.states)
}

func (d *DFA[S]) Alphabet() []Symbol {
	return slices.Clone(d.alphabet)
}

// Delta Returns a copy of the transition function.
func (d *DFA[S]) Delta() map[S]map[Symbol]S {
	out := make(map[S]map[Symbol]S, len(d.delta))
	for source, row := range d.delta {
		out[source] = maps.Clone(row)
	}
	return out
}

func (d *DFA[S]) Initial() S {
	return d.initial
}

// FinalStates Returns the accept states in ascending order.
func (d *DFA[S]) FinalStates() []S {
	finals := make([]S, 0, d.isAccept.Count())
	for i, ok := d.isAccept.NextSet(0); ok; i, ok = d.isAccept.NextSet(i + 1) {
		finals = append(finals, d.states[i])
	}
	return finals
}

func (d *DFA[S]) IsFinal(state S) bool {
	i, ok := d.index[state]
	return ok && d.isAccept.Test(uint(i))
}

// Step Performs lookup in transitions.
// Returns the destination state and false if there is no matching outgoing transition.
func (d *DFA[S]) Step(state S, sym Symbol) (S, bool) {
	dest, ok := d.delta[state][sym]
	return dest, ok
}

// Run Returns true if input leads from the initial state to a final state. Unlike
// Accepts, the empty input is accepted only when the initial state is final.
func (d *DFA[S]) Run(input []Symbol) (bool, error) {
	state := d.initial
	for _, sym := range input {
		if _, ok := d.symbols[sym]; !ok {
			return false, &UndeclaredSymbolError{Symbol: sym}
		}
		next, ok := d.Step(state, sym)
		if !ok {
			return false, nil
		}
		state = next
	}
	return d.IsFinal(state), nil
}

// IsTotal Returns true if every state has a transition on every alphabet symbol.
func (d *DFA[S]) IsTotal() bool {
	for _, s := range d.states {
		row := d.delta[s]
		for _, sym := range d.alphabet {
			if _, ok := row[sym]; !ok {
				return false
			}
		}
	}
	return true
}

// Complement Returns a copy with final and non-final states swapped. The result
// accepts exactly the words d rejects only if d is total; see IsTotal and Totalize.
func (d *DFA[S]) Complement() *DFA[S] {
	finals := make([]S, 0, len(d.states))
	for i, s := range d.states {
		if !d.isAccept.Test(uint(i)) {
			finals = append(finals, s)
		}
	}
	return buildDFA(d.states, d.alphabet, d.delta, d.initial, finals)
}

// NFA Returns d as an Automaton, for use with Accepts and the other transformations.
func (d *DFA[S]) NFA() *Automaton[S] {
	return build(d.states, d.alphabet, asTransitions(d.delta), d.initial, d.FinalStates())
}

// Totalize Returns d with every missing (state, symbol) pair routed to dead, which
// loops to itself on every symbol and is not final. If d is already total it is
// returned unchanged. Otherwise dead must be a new state: if d already declares it,
// *InvalidReferenceError with Reason AlreadyDeclared is returned.
func Totalize[S cmp.Ordered](d *DFA[S], dead S) (*DFA[S], error) {
	if d.IsTotal() {
		return d, nil
	}
	if _, ok := d.index[dead]; ok {
		return nil, &InvalidReferenceError{Element: dead, Set: SetStates, Reason: AlreadyDeclared}
	}
	return totalize(d, dead), nil
}

// totalize expects d to be partial and dead to be undeclared.
func totalize[S cmp.Ordered](d *DFA[S], dead S) *DFA[S] {
	states := append(slices.Clone(d.states), dead)
	delta := d.Delta()
	for _, s := range states {
		row, ok := delta[s]
		if !ok {
			row = make(map[Symbol]S, len(d.alphabet))
			delta[s] = row
		}
		for _, sym := range d.alphabet {
			if _, ok := row[sym]; !ok {
				row[sym] = dead
			}
		}
	}
	return buildDFA(states, d.alphabet, delta, d.initial, d.FinalStates())
}
