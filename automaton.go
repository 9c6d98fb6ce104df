package fsa

import (
	"cmp"
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Symbol An input symbol. The empty symbol is reserved for epsilon transitions.
type Symbol = string

// Epsilon Label of a transition that consumes no input.
const Epsilon Symbol = ""

// Transitions Partial transition relation: source -> symbol -> destinations.
// A missing key means there is no transition for that pair.
type Transitions[S cmp.Ordered] map[S]map[Symbol][]S

// Automaton Represents a nondeterministic finite automaton whose transitions may include
// Epsilon. States are values of any ordered type; the order is used only to name
// merged states canonically. Once built an Automaton is never modified, so it may be
// read from many goroutines. Every transformation returns a new value.
type Automaton[S cmp.Ordered] struct {
	// Sorted and deduplicated; a state's position here is its index.
	states []S
	index  map[S]int

	alphabet []Symbol
	symbols  map[Symbol]struct{}

	// Destination lists are sorted and deduplicated; empty lists are dropped.
	transitions map[S]map[Symbol][]S

	initial  S
	isAccept *bitset.BitSet

	hasEpsilon bool

	// True if no state has an epsilon transition or two destinations for one symbol.
	deterministic bool
}

// New Validates the description and builds an automaton from it. The inputs are
// copied; later changes by the caller are not observed.
func New[S cmp.Ordered](states []S, alphabet []Symbol, transitions Transitions[S], initial S, finals []S) (*Automaton[S], error) {
	if err := Validate(states, alphabet, transitions, initial, finals); err != nil {
		return nil, err
	}
	return build(states, alphabet, transitions, initial, finals), nil
}

// build assumes the description is valid.
func build[S cmp.Ordered](states []S, alphabet []Symbol, transitions Transitions[S], initial S, finals []S) *Automaton[S] {
	a := &Automaton[S]{
		states:        sortedUnique(states),
		alphabet:      sortedUnique(alphabet),
		symbols:       make(map[Symbol]struct{}, len(alphabet)),
		transitions:   make(map[S]map[Symbol][]S, len(transitions)),
		initial:       initial,
		deterministic: true,
	}

	a.index = make(map[S]int, len(a.states))
	for i, s := range a.states {
		a.index[s] = i
	}
	for _, sym := range a.alphabet {
		a.symbols[sym] = struct{}{}
	}

	for source, bySymbol := range transitions {
		row := make(map[Symbol][]S, len(bySymbol))
		for sym, dests := range bySymbol {
			if len(dests) == 0 {
				continue
			}
			row[sym] = sortedUnique(dests)
			if sym == Epsilon {
				a.hasEpsilon = true
				a.deterministic = false
			} else if len(row[sym]) > 1 {
				a.deterministic = false
			}
		}
		if len(row) > 0 {
			a.transitions[source] = row
		}
	}

	a.isAccept = bitset.New(uint(len(a.states)))
	for _, f := range finals {
		a.isAccept.Set(uint(a.index[f]))
	}
	return a
}

// States Returns the states in ascending order.
func (a *Automaton[S]) States() []S {
	return slices.Clone(a.states)
}

// GetNumStates How many states this automaton has.
func (a *Automaton[S]) GetNumStates() int {
	return len(a.states)
}

// Alphabet Returns the declared symbols in ascending order.
func (a *Automaton[S]) Alphabet() []Symbol {
	return slices.Clone(a.alphabet)
}

// HasSymbol Returns true if sym is declared in the alphabet.
func (a *Automaton[S]) HasSymbol(sym Symbol) bool {
	_, ok := a.symbols[sym]
	return ok
}

// Transitions Returns a deep copy of the transition relation.
func (a *Automaton[S]) Transitions() Transitions[S] {
	out := make(Transitions[S], len(a.transitions))
	for source, row := range a.transitions {
		copied := make(map[Symbol][]S, len(row))
		for sym, dests := range row {
			copied[sym] = slices.Clone(dests)
		}
		out[source] = copied
	}
	return out
}

// Destinations Returns the states reached from state on sym, in ascending order.
func (a *Automaton[S]) Destinations(state S, sym Symbol) []S {
	return slices.Clone(a.transitions[state][sym])
}

func (a *Automaton[S]) Initial() S {
	return a.initial
}

// FinalStates Returns the accept states in ascending order.
func (a *Automaton[S]) FinalStates() []S {
	finals := make([]S, 0, a.isAccept.Count())
	for i, ok := a.isAccept.NextSet(0); ok; i, ok = a.isAccept.NextSet(i + 1) {
		finals = append(finals, a.states[i])
	}
	return finals
}

// IsFinal Returns true if this state is an accept state.
func (a *Automaton[S]) IsFinal(state S) bool {
	i, ok := a.index[state]
	return ok && a.isAccept.Test(uint(i))
}

// HasEpsilon Returns true if any transition is labelled Epsilon.
func (a *Automaton[S]) HasEpsilon() bool {
	return a.hasEpsilon
}

// IsDeterministic Returns true if there are no epsilon transitions and every
// (state, symbol) pair has at most one destination.
func (a *Automaton[S]) IsDeterministic() bool {
	return a.deterministic
}

// Closure Returns the epsilon closure of state. See Closure.
func (a *Automaton[S]) Closure(state S) []S {
	return Closure(a, state)
}

// symbolsFrom returns the symbols leaving state, sorted, Epsilon included.
func (a *Automaton[S]) symbolsFrom(state S) []Symbol {
	return slices.Sorted(maps.Keys(a.transitions[state]))
}

// acceptIndex reports whether the state at index i is final.
func (a *Automaton[S]) acceptIndex(i int) bool {
	return a.isAccept.Test(uint(i))
}
