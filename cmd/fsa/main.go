// Command fsa validates, runs and transforms automata described in YAML.
//
//	fsa validate nfa.yaml
//	fsa accept nfa.yaml 0101 011
//	fsa determinize --total nfa.yaml
//
// Exit status is 0 on success, 1 when accept rejects a word and 2 on any error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitError    = 2
)

var errRejected = errors.New("input rejected")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errRejected):
		return exitRejected
	default:
		fmt.Fprintln(stderr, newStyles(stderr).failure.Render("error: "+err.Error()))
		return exitError
	}
}
