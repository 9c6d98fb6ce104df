package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/geange/fsa"
	"github.com/geange/fsa/internal/definition"
	"github.com/geange/fsa/internal/logging"
	"github.com/spf13/cobra"
)

type app struct {
	stdout   io.Writer
	stderr   io.Writer
	logLevel string
	logger   *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "fsa",
		Short:         "Validate, run and transform finite-state automata",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(a.stderr, a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		a.validateCmd(),
		a.acceptCmd(),
		a.eliminateCmd(),
		a.determinizeCmd(),
		a.complementCmd(),
		a.describeCmd(),
	)
	return root
}

// load reads and validates the automaton at path.
func (a *app) load(path string) (*fsa.Automaton[string], error) {
	doc, err := definition.Load(path)
	if err != nil {
		return nil, err
	}
	nfa, err := doc.Automaton()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("loaded automaton",
		"path", path,
		"states", nfa.GetNumStates(),
		"symbols", len(nfa.Alphabet()),
		"epsilon", nfa.HasEpsilon())
	return nfa, nil
}

func (a *app) options(exact, total bool) []fsa.Option {
	opts := []fsa.Option{fsa.WithLogger(a.logger)}
	if exact {
		opts = append(opts, fsa.WithGrouping(fsa.GroupPerClosure))
	}
	if total {
		opts = append(opts, fsa.WithCompleteness(fsa.TotalWithDeadState))
	}
	return opts
}
