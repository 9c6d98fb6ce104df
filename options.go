package fsa

import "log/slog"

// Grouping Selects how epsilon elimination forms macro-states.
type Grouping int

const (
	// GroupOverlapping merges every pair of epsilon closures that share a state into one
	// macro-state (union-find, independent of processing order). States whose closure
	// holds only themselves stay alone.
	GroupOverlapping Grouping = iota

	// GroupPerClosure makes one macro-state per distinct epsilon closure and computes its
	// transitions over all closure members. It preserves the language for every input.
	GroupPerClosure
)

// Completeness Selects whether determinization synthesizes a dead state.
type Completeness int

const (
	// Partial omits (state, symbol) pairs that have no destination.
	Partial Completeness = iota

	// TotalWithDeadState routes every missing (state, symbol) pair, over the whole
	// alphabet, to DeadState.
	TotalWithDeadState
)

type transformOptions struct {
	logger       *slog.Logger
	grouping     Grouping
	completeness Completeness
}

type Option func(*transformOptions)

func newTransformOptions(options ...Option) *transformOptions {
	opts := &transformOptions{
		logger:       slog.New(slog.DiscardHandler),
		grouping:     GroupOverlapping,
		completeness: Partial,
	}
	for _, fn := range options {
		fn(opts)
	}
	return opts
}

// WithLogger Transformations report sizes at debug level to logger. Nil keeps the
// default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *transformOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithGrouping(grouping Grouping) Option {
	return func(o *transformOptions) {
		o.grouping = grouping
	}
}

func WithCompleteness(completeness Completeness) Option {
	return func(o *transformOptions) {
		o.completeness = completeness
	}
}
