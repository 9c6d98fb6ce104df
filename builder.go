package fsa

import "cmp"

// Builder Collects states, symbols and transitions one at a time, then produces an
// Automaton with Finish. Unlike New, transitions for a state may be added in any order.
type Builder[S cmp.Ordered] struct {
	states      []S
	alphabet    []Symbol
	transitions Transitions[S]
	initial     S
	accept      map[S]bool
}

func NewBuilder[S cmp.Ordered]() *Builder[S] {
	return &Builder[S]{
		transitions: make(Transitions[S]),
		accept:      make(map[S]bool),
	}
}

// AddState Declares states.
func (b *Builder[S]) AddState(states ...S) {
	b.states = append(b.states, states...)
}

// AddSymbol Declares alphabet symbols.
func (b *Builder[S]) AddSymbol(symbols ...Symbol) {
	b.alphabet = append(b.alphabet, symbols...)
}

// AddTransition Add transitions from source to each dest on sym.
func (b *Builder[S]) AddTransition(source S, sym Symbol, dests ...S) {
	row, ok := b.transitions[source]
	if !ok {
		row = make(map[Symbol][]S)
		b.transitions[source] = row
	}
	for _, d := range dests {
		row[sym] = appendUnique(row[sym], d)
	}
}

// AddEpsilon Add epsilon transitions from source to each dest.
func (b *Builder[S]) AddEpsilon(source S, dests ...S) {
	b.AddTransition(source, Epsilon, dests...)
}

func (b *Builder[S]) SetInitial(state S) {
	b.initial = state
}

// SetAccept Set or clear this state as an accept state.
func (b *Builder[S]) SetAccept(state S, accept bool) {
	b.accept[state] = accept
}

func (b *Builder[S]) finals() []S {
	finals := make([]S, 0, len(b.accept))
	for s, ok := range b.accept {
		if ok {
			finals = append(finals, s)
		}
	}
	return finals
}

// Finish Validates what was collected and returns the automaton.
func (b *Builder[S]) Finish() (*Automaton[S], error) {
	return New(b.states, b.alphabet, b.transitions, b.initial, b.finals())
}

// finish is Finish for callers that construct valid automata by design.
func (b *Builder[S]) finish() *Automaton[S] {
	return build(b.states, b.alphabet, b.transitions, b.initial, b.finals())
}
