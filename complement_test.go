package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplement(t *testing.T) {
	t.Run("flips final states only", func(t *testing.T) {
		a := scenarioAutomaton(t)
		c := Complement(a)

		assert.Equal(t, []string{"q0", "q1"}, c.FinalStates())
		assert.Equal(t, a.States(), c.States())
		assert.Equal(t, a.Transitions(), c.Transitions())
		assert.Equal(t, a.Initial(), c.Initial())
		assert.Equal(t, []string{"q2"}, a.FinalStates(), "input is not modified")
	})

	t.Run("language complement on a total DFA", func(t *testing.T) {
		a := evenOnes(t).NFA()
		c := Complement(a)
		for _, w := range allWords([]Symbol{"0", "1"}, 4) {
			if len(w) == 0 {
				continue
			}
			want, err := Accepts(a, w)
			require.NoError(t, err)
			got, err := Accepts(c, w)
			require.NoError(t, err)
			assert.Equal(t, !want, got, "%v", w)
		}
	})

	t.Run("not a complement on a nondeterministic automaton", func(t *testing.T) {
		// endsWith01 accepts "001"; flipping finals also accepts it through p.
		a := endsWith01(t)
		c := Complement(a)
		ok, err := Accepts(a, split("001"))
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = Accepts(c, split("001"))
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestComplementLanguage(t *testing.T) {
	a := endsWith01(t)
	c := ComplementLanguage(a)

	assert.True(t, c.IsTotal())
	for _, w := range allWords([]Symbol{"0", "1"}, 5) {
		if len(w) == 0 {
			continue
		}
		want, err := Accepts(a, w)
		require.NoError(t, err)
		got, err := c.Run(w)
		require.NoError(t, err)
		assert.Equal(t, !want, got, "%v", w)
	}

	ok, err := c.Run(nil)
	require.NoError(t, err)
	assert.True(t, ok, "the empty word does not end in 01")

	t.Run("partial input gets a dead state", func(t *testing.T) {
		a := scenarioAutomaton(t)
		c := ComplementLanguage(a)
		assert.True(t, c.IsFinal(DeadState))

		for w, want := range map[string]bool{"0": true, "1": false, "10": true, "11": true} {
			got, err := c.Run(split(w))
			require.NoError(t, err)
			assert.Equal(t, want, got, w)
		}
	})
}

func TestComplementLanguage_EpsilonInput(t *testing.T) {
	a := optionalMiddle(t)

	for _, options := range [][]Option{nil, {WithGrouping(GroupOverlapping)}} {
		c := ComplementLanguage(a, options...)
		assert.True(t, c.IsTotal())

		ok, err := c.Run(split("abbc"))
		require.NoError(t, err)
		assert.True(t, ok, "abbc is rejected by the input")

		for _, w := range allWords([]Symbol{"a", "b", "c"}, 4) {
			if len(w) == 0 {
				continue
			}
			want, err := Accepts(a, w)
			require.NoError(t, err)
			got, err := c.Run(w)
			require.NoError(t, err)
			assert.Equal(t, !want, got, "%v", w)
		}
	}
}
