/*
Package hmm implements inference for first-order discrete hidden Markov
models with explicit begin and end sentinel states.

A model is defined by an ordered list of states where the first entry is the
begin state and the last entry is the end state, a transition probability
for each modeled (from, to) state pair, and an emission probability for each
(emitting state, symbol) pair. The package computes the total sequence
probability by the forward and backward recursions and the single most
probable state path by the Viterbi recursion with backpointer traceback.

All arithmetic is done directly in probability space. Products of up to L
cell values underflow double precision for long sequences; callers that
need sequences beyond a few hundred symbols should rescale their models or
use a log-space implementation.
*/
package hmm

import (
	"fmt"

	"github.com/golang/glog"
	multierror "github.com/hashicorp/go-multierror"
)

// Model is an immutable discrete HMM. All inference functions treat it as
// read-only, so a single Model may be shared by concurrent calls.
type Model struct {
	states []string
	rows   map[string]int
	trans  map[string]map[string]float64
	emit   map[string]map[string]float64
}

// NewModel creates a validated model. The state list must have at least two
// entries; the first is the begin state and the last is the end state.
// Transition and emission rows may be sparse. Pairs that are never looked
// up during inference do not need an entry, but a missing entry that is
// looked up is reported as an error, never treated as probability zero.
func NewModel(states []string, trans map[string]map[string]float64, emit map[string]map[string]float64) (*Model, error) {

	var result *multierror.Error

	if len(states) < 2 {
		return nil, fmt.Errorf("hmm: need at least begin and end states, got %d state(s)", len(states))
	}

	rows := make(map[string]int, len(states))
	for i, s := range states {
		if _, ok := rows[s]; ok {
			result = multierror.Append(result, fmt.Errorf("hmm: duplicate state label %q", s))
			continue
		}
		rows[s] = i
	}

	begin := states[0]
	end := states[len(states)-1]

	for from, row := range trans {
		if _, ok := rows[from]; !ok {
			result = multierror.Append(result, fmt.Errorf("hmm: transition row references unknown state %q", from))
		}
		for to, p := range row {
			if _, ok := rows[to]; !ok {
				result = multierror.Append(result, fmt.Errorf("hmm: transition %q -> %q references unknown state %q", from, to, to))
			}
			if p < 0 || p > 1 {
				result = multierror.Append(result, fmt.Errorf("hmm: transition %q -> %q has probability %f outside [0,1]", from, to, p))
			}
		}
	}

	for state, row := range emit {
		if _, ok := rows[state]; !ok {
			result = multierror.Append(result, fmt.Errorf("hmm: emission row references unknown state %q", state))
			continue
		}
		if state == begin || state == end {
			result = multierror.Append(result, fmt.Errorf("hmm: sentinel state %q must not emit", state))
		}
		for sym, p := range row {
			if p < 0 || p > 1 {
				result = multierror.Append(result, fmt.Errorf("hmm: emission of %q from state %q has probability %f outside [0,1]", sym, state, p))
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	m := &Model{
		states: append([]string(nil), states...),
		rows:   rows,
		trans:  copyRows(trans),
		emit:   copyRows(emit),
	}
	glog.V(2).Infof("new model with %d states, begin %q, end %q", len(states), begin, end)
	return m, nil
}

// copyRows detaches the model from the caller's maps. The model is
// read-only after construction.
func copyRows(in map[string]map[string]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(in))
	for key, row := range in {
		r := make(map[string]float64, len(row))
		for k, p := range row {
			r[k] = p
		}
		out[key] = r
	}
	return out
}

// N returns the number of states, sentinels included.
func (m *Model) N() int { return len(m.states) }

// States returns the state labels in row order.
func (m *Model) States() []string {
	return append([]string(nil), m.states...)
}

// Begin returns the begin sentinel label.
func (m *Model) Begin() string { return m.states[0] }

// End returns the end sentinel label.
func (m *Model) End() string { return m.states[len(m.states)-1] }

// Emitting returns the labels strictly between begin and end, in order.
func (m *Model) Emitting() []string {
	return append([]string(nil), m.states[1:len(m.states)-1]...)
}

// Row returns the table row index of a state.
func (m *Model) Row(state string) (int, error) {
	r, ok := m.rows[state]
	if !ok {
		return 0, &UnknownStateError{State: state}
	}
	return r, nil
}

// TransProb returns the probability of the transition from -> to.
func (m *Model) TransProb(from, to string) (float64, error) {
	row, ok := m.trans[from]
	if !ok {
		return 0, &UnknownTransitionError{From: from, To: to}
	}
	p, ok := row[to]
	if !ok {
		return 0, &UnknownTransitionError{From: from, To: to}
	}
	return p, nil
}

// EmitProb returns the probability that state emits sym.
func (m *Model) EmitProb(state, sym string) (float64, error) {
	row, ok := m.emit[state]
	if !ok {
		return 0, &UnknownSymbolError{State: state, Symbol: sym}
	}
	p, ok := row[sym]
	if !ok {
		return 0, &UnknownSymbolError{State: state, Symbol: sym}
	}
	return p, nil
}

// Validate checks that every transition and emission the forward, backward
// and Viterbi sweeps would look up for seq is present in the model. It
// reports all missing entries at once so that an incomplete model surfaces
// as a single diagnostic instead of failing lazily mid-sweep.
//
// Validate intentionally does not check that rows sum to one. The model is
// taken exactly as given and is never normalized.
func (m *Model) Validate(seq []string) error {

	var result *multierror.Error
	em := m.Emitting()

	if len(seq) == 0 {
		if _, err := m.TransProb(m.Begin(), m.End()); err != nil {
			result = multierror.Append(result, err)
		}
		return result.ErrorOrNil()
	}

	syms := make(map[string]bool)
	for _, s := range seq {
		syms[s] = true
	}

	for _, i := range em {
		if _, err := m.TransProb(m.Begin(), i); err != nil {
			result = multierror.Append(result, err)
		}
		if _, err := m.TransProb(i, m.End()); err != nil {
			result = multierror.Append(result, err)
		}
		for sym := range syms {
			if _, err := m.EmitProb(i, sym); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}
	if len(seq) > 1 {
		for _, k := range em {
			for _, i := range em {
				if _, err := m.TransProb(k, i); err != nil {
					result = multierror.Append(result, err)
				}
			}
		}
	}
	return result.ErrorOrNil()
}
