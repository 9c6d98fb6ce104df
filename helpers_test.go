package fsa

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// split turns "01" into []Symbol{"0", "1"}.
func split(w string) []Symbol {
	out := make([]Symbol, 0, len(w))
	for _, r := range w {
		out = append(out, string(r))
	}
	return out
}

// allWords returns every word over alphabet of length 0..maxLen.
func allWords(alphabet []Symbol, maxLen int) [][]Symbol {
	words := [][]Symbol{{}}
	layer := [][]Symbol{{}}
	for n := 0; n < maxLen; n++ {
		var next [][]Symbol
		for _, w := range layer {
			for _, sym := range alphabet {
				word := append(append([]Symbol{}, w...), sym)
				next = append(next, word)
			}
		}
		words = append(words, next...)
		layer = next
	}
	return words
}

func assertSameLanguage[S1, S2 cmp.Ordered](t *testing.T, want *Automaton[S1], got *Automaton[S2], words [][]Symbol) {
	t.Helper()
	for _, w := range words {
		expected, err := Accepts(want, w)
		require.NoError(t, err)
		actual, err := Accepts(got, w)
		require.NoError(t, err)
		assert.Equalf(t, expected, actual, "word %q", strings.Join(w, ""))
	}
}

// q0 -1-> q1 -ε-> q2, q2 final.
func scenarioAutomaton(t *testing.T) *Automaton[string] {
	t.Helper()
	a, err := New(
		[]string{"q0", "q1", "q2"},
		[]Symbol{"0", "1"},
		Transitions[string]{
			"q0": {"1": {"q1"}},
			"q1": {Epsilon: {"q2"}},
		},
		"q0",
		[]string{"q2"},
	)
	require.NoError(t, err)
	return a
}

// Accepts y*x: a and b are mutually epsilon-reachable, c has an epsilon self-loop.
func cycleAutomaton(t *testing.T) *Automaton[string] {
	t.Helper()
	b := NewBuilder[string]()
	b.AddState("a", "b", "c")
	b.AddSymbol("x", "y")
	b.SetInitial("a")
	b.SetAccept("c", true)
	b.AddEpsilon("a", "b")
	b.AddEpsilon("b", "a")
	b.AddEpsilon("c", "c")
	b.AddTransition("a", "y", "a")
	b.AddTransition("b", "x", "c")
	a, err := b.Finish()
	require.NoError(t, err)
	return a
}

// Words over {0,1} ending in "01".
func endsWith01(t *testing.T) *Automaton[string] {
	t.Helper()
	a, err := New(
		[]string{"p", "q", "r"},
		[]Symbol{"0", "1"},
		Transitions[string]{
			"p": {"0": {"p", "q"}, "1": {"p"}},
			"q": {"1": {"r"}},
		},
		"p",
		[]string{"r"},
	)
	require.NoError(t, err)
	return a
}

// Accepts "ac" and "abc": s1 reaches s2 by epsilon but not the other way round.
func optionalMiddle(t *testing.T) *Automaton[string] {
	t.Helper()
	a, err := New(
		[]string{"s0", "s1", "s2", "s3"},
		[]Symbol{"a", "b", "c"},
		Transitions[string]{
			"s0": {"a": {"s1"}},
			"s1": {"b": {"s2"}, Epsilon: {"s2"}},
			"s2": {"c": {"s3"}},
		},
		"s0",
		[]string{"s3"},
	)
	require.NoError(t, err)
	return a
}
