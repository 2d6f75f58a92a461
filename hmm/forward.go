package hmm

import (
	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
)

// Forward computes the forward probabilities for seq. Indices are
// F(state, position):
//
// 1. Initialization: F(begin,0) = 1
// 2. First symbol:   F(i,1) = a(begin,i) b(i,o(0))
// 3. Induction:      F(i,j) = sum_k [ F(k,j-1) a(k,i) ] b(i,o(j-1)); 2<=j<=L
// 4. Termination:    F(end,L+1) = sum_k F(k,L) a(k,end)
//
// where i and k range over the emitting states. The terminal cell holds the
// total probability of seq marginalized over all state paths.
//
// An empty sequence is scored as the direct begin -> end transition; if the
// model does not define one, an UnknownTransitionError is returned.
func Forward(m *Model, seq []string) (*Table, error) {

	em := m.Emitting()
	l := len(seq)
	f := newTable(m, l)
	f.cells[m.rows[m.Begin()]][0] = 1.0

	if l == 0 {
		p, err := m.TransProb(m.Begin(), m.End())
		if err != nil {
			return nil, err
		}
		f.cells[m.rows[m.End()]][1] = p
		return f, nil
	}

	if err := m.checkEmitting(); err != nil {
		return nil, err
	}

	for _, i := range em {
		a, err := m.TransProb(m.Begin(), i)
		if err != nil {
			return nil, err
		}
		b, err := m.EmitProb(i, seq[0])
		if err != nil {
			return nil, err
		}
		f.cells[m.rows[i]][1] = a * b
	}

	sum := make([]float64, len(em))
	for j := 2; j <= l; j++ {
		for _, i := range em {
			b, err := m.EmitProb(i, seq[j-1])
			if err != nil {
				return nil, err
			}
			for ki, k := range em {
				a, err := m.TransProb(k, i)
				if err != nil {
					return nil, err
				}
				sum[ki] = f.cells[m.rows[k]][j-1] * a * b
			}
			v := floats.Sum(sum)
			f.cells[m.rows[i]][j] = v
			if glog.V(4) {
				glog.Infof("j: %4d | i: %s | F: %5e", j, i, v)
			}
		}
	}

	for ki, k := range em {
		a, err := m.TransProb(k, m.End())
		if err != nil {
			return nil, err
		}
		sum[ki] = f.cells[m.rows[k]][l] * a
	}
	f.cells[m.rows[m.End()]][l+1] = floats.Sum(sum)

	return f, nil
}

func (m *Model) checkEmitting() error {
	if m.N() == 2 {
		return ErrNoEmittingStates
	}
	return nil
}
