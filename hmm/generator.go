package hmm

import (
	"fmt"
	"math/rand"
	"sort"
)

const smallNumber = 0.000001

// Generator draws random observation sequences from a model.
type Generator struct {
	m *Model
	r *rand.Rand
}

// NewGenerator returns a sequence generator. Sequences are deterministic
// for a given seed.
func NewGenerator(m *Model, seed int64) *Generator {
	return &Generator{
		m: m,
		r: rand.New(rand.NewSource(seed)),
	}
}

// Next samples a state path from begin toward end and the symbols emitted
// along it. The walk stops when the end state is reached or after maxLen
// emissions, whichever comes first; the returned path includes the begin
// sentinel and, when reached, the end sentinel.
//
// Sampling needs each visited row to be a full distribution, so unlike the
// inference sweeps Next fails when a row's mass is not one.
func (gen *Generator) Next(maxLen int) (path []string, obs []string, err error) {

	path = []string{gen.m.Begin()}
	cur := gen.m.Begin()

	for len(obs) < maxLen {
		next, e := gen.nextState(cur)
		if e != nil {
			return nil, nil, e
		}
		path = append(path, next)
		if next == gen.m.End() {
			return path, obs, nil
		}
		sym, e := gen.nextSymbol(next)
		if e != nil {
			return nil, nil, e
		}
		obs = append(obs, sym)
		cur = next
	}
	return path, obs, nil
}

// nextState draws a successor from cur's transition row. States are
// scanned in model order so draws are reproducible under a fixed seed.
func (gen *Generator) nextState(cur string) (string, error) {

	row, ok := gen.m.trans[cur]
	if !ok {
		return "", &UnknownTransitionError{From: cur, To: "(any)"}
	}

	ran := gen.r.Float64()
	cum := 0.0
	last := ""
	for _, to := range gen.m.states {
		p, ok := row[to]
		if !ok {
			continue
		}
		cum += p
		last = to
		if ran < cum {
			return to, nil
		}
	}
	if cum < 1.0-smallNumber {
		return "", fmt.Errorf("hmm: cannot sample from state %q, outgoing probabilities sum to %f", cur, cum)
	}
	return last, nil
}

func (gen *Generator) nextSymbol(state string) (string, error) {

	row, ok := gen.m.emit[state]
	if !ok {
		return "", &UnknownSymbolError{State: state, Symbol: "(any)"}
	}

	syms := make([]string, 0, len(row))
	for s := range row {
		syms = append(syms, s)
	}
	sort.Strings(syms)

	ran := gen.r.Float64()
	cum := 0.0
	for _, s := range syms {
		cum += row[s]
		if ran < cum {
			return s, nil
		}
	}
	if cum < 1.0-smallNumber {
		return "", fmt.Errorf("hmm: cannot sample from state %q, emission probabilities sum to %f", state, cum)
	}
	return syms[len(syms)-1], nil
}
