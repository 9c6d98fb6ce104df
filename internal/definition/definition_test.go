package definition

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/geange/fsa"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario = `
states: [q0, q1, q2]
alphabet: ["0", "1"]
transitions:
  q0: {"1": [q1]}
  q1: {"": [q2]}
initial: q0
final: [q2]
`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(scenario))
	require.NoError(t, err)
	assert.Equal(t, []string{"q0", "q1", "q2"}, doc.States)
	assert.Equal(t, []string{"q2"}, doc.Final)
	assert.Equal(t, []string{"q2"}, doc.Transitions["q1"][fsa.Epsilon])

	a, err := doc.Automaton()
	require.NoError(t, err)
	assert.True(t, a.HasEpsilon())

	ok, err := fsa.Accepts(a, []fsa.Symbol{"1"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParse_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""))
		assert.ErrorContains(t, err, "empty document")
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Parse(strings.NewReader("states: [a]\ninitial: a\nstart: a\n"))
		assert.ErrorContains(t, err, "decode")
	})

	t.Run("missing states", func(t *testing.T) {
		_, err := Parse(strings.NewReader("initial: a\n"))
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "States", verrs[0].Field())
	})

	t.Run("missing initial", func(t *testing.T) {
		_, err := Parse(strings.NewReader("states: [a]\n"))
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "Initial", verrs[0].Field())
	})

	t.Run("reference checked by the engine", func(t *testing.T) {
		doc, err := Parse(strings.NewReader("states: [q0]\ninitial: q9\n"))
		require.NoError(t, err)
		_, err = doc.Automaton()

		var ref *fsa.InvalidReferenceError
		require.ErrorAs(t, err, &ref)
		assert.Equal(t, "q9", ref.Element)
		assert.Equal(t, fsa.SetStates, ref.Set)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nfa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "q0", doc.Initial)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	doc, err := Parse(strings.NewReader(scenario))
	require.NoError(t, err)
	a, err := doc.Automaton()
	require.NoError(t, err)

	free := FromAutomaton(fsa.EliminateEpsilon(a))
	var buf bytes.Buffer
	require.NoError(t, free.Encode(&buf))
	assert.Contains(t, buf.String(), "{q1,q2}")

	back, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"{q0}", "{q1,q2}"}, back.States)
	assert.Equal(t, map[string]map[string][]string{"{q0}": {"1": {"{q1,q2}"}}}, back.Transitions)
}

func TestFromDFA(t *testing.T) {
	d, err := fsa.NewDFA([]int{0, 1}, []fsa.Symbol{"a"}, map[int]map[fsa.Symbol]int{0: {"a": 1}}, 0, []int{1})
	require.NoError(t, err)

	doc := FromDFA(d)
	assert.Equal(t, []string{"0", "1"}, doc.States)
	assert.Equal(t, "0", doc.Initial)
	assert.Equal(t, map[string]map[string][]string{"0": {"a": {"1"}}}, doc.Transitions)
}
