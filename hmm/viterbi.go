package hmm

import (
	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
)

// Viterbi computes the max-product analog of Forward. The probability table
// holds the score of the single best path into each cell:
//
// 1. Initialization: V(begin,0) = 1
// 2. First symbol:   V(i,1) = a(begin,i) b(i,o(0))
// 3. Induction:      V(i,j) = max_k [ V(k,j-1) a(k,i) ] b(i,o(j-1)); 2<=j<=L
// 4. Termination:    V(end,L+1) = max_k V(k,L) a(k,end)
//
// The parallel label table records, for every cell, the predecessor state
// that attained the maximum. Cells that never see a max step, including the
// whole first symbol column, stay at the begin state default. Ties keep the
// earliest state in row order, so decoding is deterministic.
//
// The empty-sequence convention matches Forward; the returned label table
// is then all-default and Traceback yields the two-state path begin, end.
func Viterbi(m *Model, seq []string) (*Table, *LabelTable, error) {

	em := m.Emitting()
	l := len(seq)
	v := newTable(m, l)
	bp := newLabelTable(m, l, m.Begin())
	v.cells[m.rows[m.Begin()]][0] = 1.0

	if l == 0 {
		p, err := m.TransProb(m.Begin(), m.End())
		if err != nil {
			return nil, nil, err
		}
		v.cells[m.rows[m.End()]][1] = p
		return v, bp, nil
	}

	if err := m.checkEmitting(); err != nil {
		return nil, nil, err
	}

	for _, i := range em {
		a, err := m.TransProb(m.Begin(), i)
		if err != nil {
			return nil, nil, err
		}
		b, err := m.EmitProb(i, seq[0])
		if err != nil {
			return nil, nil, err
		}
		v.cells[m.rows[i]][1] = a * b
	}

	cand := make([]float64, len(em))
	for j := 2; j <= l; j++ {
		for _, i := range em {
			b, err := m.EmitProb(i, seq[j-1])
			if err != nil {
				return nil, nil, err
			}
			for ki, k := range em {
				a, err := m.TransProb(k, i)
				if err != nil {
					return nil, nil, err
				}
				cand[ki] = v.cells[m.rows[k]][j-1] * a * b
			}
			best := floats.MaxIdx(cand)
			v.cells[m.rows[i]][j] = cand[best]
			bp.cells[m.rows[i]][j] = em[best]
			if glog.V(4) {
				glog.Infof("j: %4d | i: %s | V: %5e | from: %s", j, i, cand[best], em[best])
			}
		}
	}

	for ki, k := range em {
		a, err := m.TransProb(k, m.End())
		if err != nil {
			return nil, nil, err
		}
		cand[ki] = v.cells[m.rows[k]][l] * a
	}
	best := floats.MaxIdx(cand)
	v.cells[m.rows[m.End()]][l+1] = cand[best]
	bp.cells[m.rows[m.End()]][l+1] = em[best]

	return v, bp, nil
}

// Traceback reconstructs the most probable state path from a Viterbi label
// table. The returned path has L+2 entries: the begin state, one state per
// observed position, and the end state. The label table is not modified.
func Traceback(m *Model, bp *LabelTable) ([]string, error) {

	l := bp.NumObs()
	path := make([]string, l+2)
	path[0] = m.Begin()
	path[l+1] = m.End()

	cur, err := bp.AtState(m.End(), l+1)
	if err != nil {
		return nil, err
	}
	for j := l; j >= 1; j-- {
		path[j] = cur
		r, ok := bp.rows[cur]
		if !ok {
			return nil, &UnknownStateError{State: cur}
		}
		cur = bp.cells[r][j]
	}
	return path, nil
}
