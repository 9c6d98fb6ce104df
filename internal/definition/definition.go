// Package definition reads and writes automaton descriptions as YAML for the fsa
// command. The engine in the root package does not depend on it.
//
//	states: [q0, q1, q2]
//	alphabet: ["0", "1"]
//	transitions:
//	  q0: {"1": [q1]}
//	  q1: {"": [q2]}   # "" labels an epsilon transition
//	initial: q0
//	final: [q2]
package definition

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/geange/fsa"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Document is the YAML form of an automaton. For a deterministic automaton every
// destination list holds a single state.
type Document struct {
	States      []string                       `yaml:"states" validate:"required,min=1"`
	Alphabet    []string                       `yaml:"alphabet"`
	Transitions map[string]map[string][]string `yaml:"transitions,omitempty"`
	Initial     string                         `yaml:"initial" validate:"required"`
	Final       []string                       `yaml:"final"`
}

// Parse decodes a single document from r and checks its shape. References between
// states and symbols are checked later, by Automaton.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("definition: empty document")
		}
		return nil, fmt.Errorf("definition: decode: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("definition: %w", err)
	}
	return &doc, nil
}

// Load parses the file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("definition: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Automaton validates the document with fsa.New and returns the automaton.
func (d *Document) Automaton() (*fsa.Automaton[string], error) {
	return fsa.New(d.States, d.Alphabet, fsa.Transitions[string](d.Transitions), d.Initial, d.Final)
}

// Encode writes d to w as YAML.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("definition: encode: %w", err)
	}
	return enc.Close()
}

// FromAutomaton describes a. States are rendered with fmt.Sprint.
func FromAutomaton[S cmp.Ordered](a *fsa.Automaton[S]) *Document {
	doc := &Document{
		States:   render(a.States()),
		Alphabet: a.Alphabet(),
		Initial:  fmt.Sprint(a.Initial()),
		Final:    render(a.FinalStates()),
	}
	for source, row := range a.Transitions() {
		if doc.Transitions == nil {
			doc.Transitions = make(map[string]map[string][]string)
		}
		out := make(map[string][]string, len(row))
		for sym, dests := range row {
			out[sym] = render(dests)
		}
		doc.Transitions[fmt.Sprint(source)] = out
	}
	return doc
}

// FromDFA describes d.
func FromDFA[S cmp.Ordered](d *fsa.DFA[S]) *Document {
	return FromAutomaton(d.NFA())
}

func render[S cmp.Ordered](states []S) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = fmt.Sprint(s)
	}
	return out
}
