package fsa

// Automata Factory for small automata over int states, used as operands of Union,
// Concatenate, Repeat and Optional.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language over alphabet.
func (*Automata) MakeEmpty(alphabet ...Symbol) *Automaton[int] {
	b := NewBuilder[int]()
	b.AddState(0)
	b.AddSymbol(alphabet...)
	return b.finish()
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabet ...Symbol) *Automaton[int] {
	b := NewBuilder[int]()
	b.AddState(0)
	b.AddSymbol(alphabet...)
	b.SetAccept(0, true)
	return b.finish()
}

// MakeSymbol
// Returns a new (deterministic) automaton that accepts a single symbol.
func (a *Automata) MakeSymbol(sym Symbol) (*Automaton[int], error) {
	return a.MakeString(sym)
}

// MakeString
// Returns a new (deterministic) automaton that accepts exactly the given symbol sequence.
func (*Automata) MakeString(symbols ...Symbol) (*Automaton[int], error) {
	b := NewBuilder[int]()
	b.AddState(0)
	b.AddSymbol(symbols...)
	for i, sym := range symbols {
		b.AddState(i + 1)
		b.AddTransition(i, sym, i+1)
	}
	b.SetAccept(len(symbols), true)
	return b.Finish()
}

// MakeAnySymbol
// Returns a new (deterministic) automaton that accepts any single symbol of alphabet.
func (*Automata) MakeAnySymbol(alphabet ...Symbol) (*Automaton[int], error) {
	b := NewBuilder[int]()
	b.AddState(0, 1)
	b.AddSymbol(alphabet...)
	b.SetAccept(1, true)
	for _, sym := range alphabet {
		b.AddTransition(0, sym, 1)
	}
	return b.Finish()
}

// MakeAnyString
// Returns a new (deterministic) automaton that accepts all strings over alphabet.
func (*Automata) MakeAnyString(alphabet ...Symbol) (*Automaton[int], error) {
	b := NewBuilder[int]()
	b.AddState(0)
	b.AddSymbol(alphabet...)
	b.SetAccept(0, true)
	for _, sym := range alphabet {
		b.AddTransition(0, sym, 0)
	}
	return b.Finish()
}
