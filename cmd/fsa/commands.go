package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/geange/fsa"
	"github.com/geange/fsa/internal/definition"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that every reference in an automaton is declared",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nfa, err := a.load(args[0])
			if err != nil {
				return err
			}
			st := newStyles(a.stdout)
			fmt.Fprintf(a.stdout, "%s %d states, %d symbols, %s\n",
				st.success.Render("valid:"),
				nfa.GetNumStates(), len(nfa.Alphabet()), kind(nfa))
			return nil
		},
	}
}

func (a *app) acceptCmd() *cobra.Command {
	var separator string
	cmd := &cobra.Command{
		Use:   "accept FILE WORD...",
		Short: "Decide which words the automaton accepts",
		Long: `Decide which words the automaton accepts. Each word is split into one symbol
per character unless --separator is given. Exits 1 if any word is rejected.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nfa, err := a.load(args[0])
			if err != nil {
				return err
			}
			words := args[1:]
			results := make([]bool, len(words))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, word := range words {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					ok, err := fsa.Accepts(nfa, splitWord(word, separator))
					if err != nil {
						return fmt.Errorf("word %q: %w", word, err)
					}
					results[i] = ok
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			st := newStyles(a.stdout)
			rejected := 0
			for i, word := range words {
				if results[i] {
					fmt.Fprintf(a.stdout, "%s\t%q\n", st.success.Render("accept"), word)
					continue
				}
				rejected++
				fmt.Fprintf(a.stdout, "%s\t%q\n", st.failure.Render("reject"), word)
			}
			a.logger.Info("evaluated words", "words", len(words), "rejected", rejected)
			if rejected > 0 {
				return errRejected
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&separator, "separator", "", "split words on this string instead of per character")
	return cmd
}

func (a *app) eliminateCmd() *cobra.Command {
	var exact bool
	cmd := &cobra.Command{
		Use:   "eliminate FILE",
		Short: "Remove epsilon transitions and print the result as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nfa, err := a.load(args[0])
			if err != nil {
				return err
			}
			free := fsa.EliminateEpsilon(nfa, a.options(exact, false)...)
			return definition.FromAutomaton(free).Encode(a.stdout)
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "one macro-state per epsilon closure instead of merging overlapping closures")
	return cmd
}

func (a *app) determinizeCmd() *cobra.Command {
	var exact, total bool
	cmd := &cobra.Command{
		Use:   "determinize FILE",
		Short: "Apply the subset construction and print the DFA as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nfa, err := a.load(args[0])
			if err != nil {
				return err
			}
			dfa := fsa.Determinize(nfa, a.options(exact, total)...)
			return definition.FromDFA(dfa).Encode(a.stdout)
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "one macro-state per epsilon closure during elimination")
	cmd.Flags().BoolVar(&total, "total", false, "route missing transitions to a dead state")
	return cmd
}

func (a *app) complementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complement FILE",
		Short: "Print a DFA accepting exactly the words the automaton rejects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nfa, err := a.load(args[0])
			if err != nil {
				return err
			}
			dfa := fsa.ComplementLanguage(nfa, a.options(false, false)...)
			return definition.FromDFA(dfa).Encode(a.stdout)
		},
	}
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE",
		Short: "Print the transition table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nfa, err := a.load(args[0])
			if err != nil {
				return err
			}
			describe(a.stdout, nfa)
			return nil
		},
	}
}

// describe renders one row per state. → marks the initial state and * the final ones.
func describe(w io.Writer, nfa *fsa.Automaton[string]) {
	st := newStyles(w)

	symbols := nfa.Alphabet()
	if nfa.HasEpsilon() {
		symbols = append([]fsa.Symbol{fsa.Epsilon}, symbols...)
	}
	headers := []string{"", "state"}
	for _, sym := range symbols {
		headers = append(headers, symbolLabel(sym))
	}

	rows := make([][]string, 0, nfa.GetNumStates())
	for _, state := range nfa.States() {
		var marker string
		if state == nfa.Initial() {
			marker += "→"
		}
		if nfa.IsFinal(state) {
			marker += "*"
		}
		row := []string{marker, state}
		for _, sym := range symbols {
			row = append(row, strings.Join(nfa.Destinations(state, sym), ","))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("%d states, %d symbols", nfa.GetNumStates(), len(nfa.Alphabet()))))
	fmt.Fprintln(w, st.muted.Render(kind(nfa)))
	fmt.Fprintln(w, t.Render())
}

func kind(nfa *fsa.Automaton[string]) string {
	switch {
	case nfa.HasEpsilon():
		return "nondeterministic with epsilon transitions"
	case nfa.IsDeterministic():
		return "deterministic"
	default:
		return "nondeterministic"
	}
}

func symbolLabel(sym fsa.Symbol) string {
	if sym == fsa.Epsilon {
		return "ε"
	}
	return sym
}

// splitWord turns a command-line word into symbols. The empty word is the empty input.
func splitWord(word, separator string) []fsa.Symbol {
	if word == "" {
		return nil
	}
	if separator != "" {
		return strings.Split(word, separator)
	}
	symbols := make([]fsa.Symbol, 0, len(word))
	for _, r := range word {
		symbols = append(symbols, string(r))
	}
	return symbols
}
