package fsa

import (
	"bytes"
	"cmp"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDFALanguage[S cmp.Ordered](t *testing.T, want *Automaton[S], d *DFA[string], words [][]Symbol) {
	t.Helper()
	assertSameLanguage(t, want, d.NFA(), words)
	for _, w := range words {
		if len(w) == 0 {
			continue
		}
		expected, err := Accepts(want, w)
		require.NoError(t, err)
		actual, err := d.Run(w)
		require.NoError(t, err)
		assert.Equalf(t, expected, actual, "Run(%v)", w)
	}
}

func TestDeterminize(t *testing.T) {
	t.Run("subset construction", func(t *testing.T) {
		a := endsWith01(t)
		d := Determinize(a)

		assert.Equal(t, []string{"{p,q}", "{p,r}", "{p}"}, d.States())
		assert.Equal(t, "{p}", d.Initial())
		assert.Equal(t, []string{"{p,r}"}, d.FinalStates())
		assert.Equal(t, map[string]map[Symbol]string{
			"{p}":   {"0": "{p,q}", "1": "{p}"},
			"{p,q}": {"0": "{p,q}", "1": "{p,r}"},
			"{p,r}": {"0": "{p,q}", "1": "{p}"},
		}, d.Delta())
		assert.True(t, d.IsTotal())
		assert.True(t, d.NFA().IsDeterministic())
		assertDFALanguage(t, a, d, allWords([]Symbol{"0", "1"}, 5))
	})

	t.Run("epsilon input is eliminated first", func(t *testing.T) {
		a := scenarioAutomaton(t)
		d := Determinize(a)

		assert.Equal(t, []string{"{{q0}}", "{{q1,q2}}"}, d.States())
		assert.Equal(t, "{{q0}}", d.Initial())
		assert.Equal(t, []string{"{{q1,q2}}"}, d.FinalStates())
		assert.Equal(t, map[string]map[Symbol]string{
			"{{q0}}": {"1": "{{q1,q2}}"},
		}, d.Delta())
		assert.False(t, d.IsTotal())

		ok, err := d.Run(split("1"))
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = d.Run(split("0"))
		require.NoError(t, err)
		assert.False(t, ok)

		assertDFALanguage(t, a, d, allWords([]Symbol{"0", "1"}, 3))
	})

	t.Run("epsilon cycle", func(t *testing.T) {
		a := cycleAutomaton(t)
		assertDFALanguage(t, a, Determinize(a), allWords([]Symbol{"x", "y"}, 4))
	})

	t.Run("at most one destination per symbol", func(t *testing.T) {
		for _, a := range []*Automaton[string]{endsWith01(t), scenarioAutomaton(t), cycleAutomaton(t), optionalMiddle(t)} {
			nfa := Determinize(a).NFA()
			assert.True(t, nfa.IsDeterministic())
			for _, s := range nfa.States() {
				for _, sym := range nfa.Alphabet() {
					assert.LessOrEqual(t, len(nfa.Destinations(s, sym)), 1)
				}
			}
		}
	})

	t.Run("redeterminizing keeps the language", func(t *testing.T) {
		a := endsWith01(t)
		once := Determinize(a)
		twice := Determinize(once.NFA())

		assert.Equal(t, once.GetNumStates(), twice.GetNumStates())
		assert.Equal(t, "{{p}}", twice.Initial())
		assertDFALanguage(t, a, twice, allWords([]Symbol{"0", "1"}, 5))
	})

	t.Run("per-closure grouping", func(t *testing.T) {
		a := optionalMiddle(t)
		d := Determinize(a, WithGrouping(GroupPerClosure))
		assertDFALanguage(t, a, d, allWords([]Symbol{"a", "b", "c"}, 4))
	})

	t.Run("logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		_ = Determinize(endsWith01(t), WithLogger(logger))
		assert.Contains(t, buf.String(), "subsets=3")
	})
}

func TestDeterminize_TotalWithDeadState(t *testing.T) {
	t.Run("dead state added for missing pairs", func(t *testing.T) {
		a := scenarioAutomaton(t)
		d := Determinize(a, WithCompleteness(TotalWithDeadState))

		assert.True(t, d.IsTotal())
		assert.Equal(t, []string{"{{q0}}", "{{q1,q2}}", DeadState}, d.States())
		assert.False(t, d.IsFinal(DeadState))
		assert.Equal(t, map[string]map[Symbol]string{
			DeadState:   {"0": DeadState, "1": DeadState},
			"{{q0}}":    {"0": DeadState, "1": "{{q1,q2}}"},
			"{{q1,q2}}": {"0": DeadState, "1": DeadState},
		}, d.Delta())
		assertDFALanguage(t, a, d, allWords([]Symbol{"0", "1"}, 3))
	})

	t.Run("already total", func(t *testing.T) {
		d := Determinize(endsWith01(t), WithCompleteness(TotalWithDeadState))
		assert.Equal(t, 3, d.GetNumStates())
		assert.NotContains(t, d.States(), DeadState)
	})
}

func TestDeterminize_StateNamesStayDistinct(t *testing.T) {
	a, err := New(
		[]string{"q0", "a", "b", "a,b", ""},
		[]Symbol{"x", "y", "z"},
		Transitions[string]{
			"q0": {"x": {"a", "b"}, "y": {"a,b"}, "z": {""}},
		},
		"q0",
		[]string{"a"},
	)
	require.NoError(t, err)

	d := Determinize(a, WithCompleteness(TotalWithDeadState))
	assert.Equal(t, []string{`{""}`, `{"a,b"}`, "{a,b}", "{q0}", DeadState}, d.States())
	assert.Equal(t, []string{"{a,b}"}, d.FinalStates())
	assert.False(t, d.IsFinal(`{""}`))

	for w, want := range map[string]bool{"x": true, "y": false, "z": false, "": false} {
		got, err := d.Run(split(w))
		require.NoError(t, err)
		assert.Equal(t, want, got, w)
	}
	assertDFALanguage(t, a, d, allWords([]Symbol{"x", "y", "z"}, 2))
}
