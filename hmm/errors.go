package hmm

import (
	"errors"
	"fmt"
)

// ErrZeroProbability is returned by Posterior when the sequence has zero
// total probability, leaving the occupancy ratios undefined.
var ErrZeroProbability = errors.New("hmm: sequence has zero probability under the model")

// ErrNoEmittingStates is returned when a non-empty sequence is scored
// against a model whose only states are the begin and end sentinels.
var ErrNoEmittingStates = errors.New("hmm: model has no emitting states")

// UnknownTransitionError reports a lookup of a (from, to) state pair that
// has no entry in the transition table. A missing pair is ambiguous with a
// genuine zero, so it is never treated as an implicit zero.
type UnknownTransitionError struct {
	From, To string
}

func (e *UnknownTransitionError) Error() string {
	return fmt.Sprintf("hmm: no transition probability from state %q to state %q", e.From, e.To)
}

// UnknownSymbolError reports a lookup of a symbol that has no emission
// entry for the given state.
type UnknownSymbolError struct {
	State, Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("hmm: state %q has no emission probability for symbol %q", e.State, e.Symbol)
}

// UnknownStateError reports a state label that is not part of the model.
type UnknownStateError struct {
	State string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("hmm: unknown state %q", e.State)
}
