package hmm

import "gonum.org/v1/gonum/floats"

// Backward computes the backward probabilities for seq, the time-reversed
// mirror of Forward:
//
// 1. Initialization: B(end,L+1) = 1
// 2. Last symbol:    B(i,L) = a(i,end)
// 3. Induction:      B(i,j) = sum_k [ a(i,k) b(k,o(j)) B(k,j+1) ]; L-1>=j>=1
// 4. Termination:    B(begin,0) = sum_k a(begin,k) b(k,o(0)) B(k,1)
//
// B(begin,0) equals the terminal forward probability for the same model and
// sequence. The empty-sequence convention matches Forward.
func Backward(m *Model, seq []string) (*Table, error) {

	em := m.Emitting()
	l := len(seq)
	b := newTable(m, l)
	b.cells[m.rows[m.End()]][l+1] = 1.0

	if l == 0 {
		p, err := m.TransProb(m.Begin(), m.End())
		if err != nil {
			return nil, err
		}
		b.cells[m.rows[m.Begin()]][0] = p
		return b, nil
	}

	if err := m.checkEmitting(); err != nil {
		return nil, err
	}

	for _, i := range em {
		a, err := m.TransProb(i, m.End())
		if err != nil {
			return nil, err
		}
		b.cells[m.rows[i]][l] = a
	}

	sum := make([]float64, len(em))
	for j := l - 1; j >= 1; j-- {
		for _, i := range em {
			for ki, k := range em {
				a, err := m.TransProb(i, k)
				if err != nil {
					return nil, err
				}
				e, err := m.EmitProb(k, seq[j])
				if err != nil {
					return nil, err
				}
				sum[ki] = a * e * b.cells[m.rows[k]][j+1]
			}
			b.cells[m.rows[i]][j] = floats.Sum(sum)
		}
	}

	for ki, k := range em {
		a, err := m.TransProb(m.Begin(), k)
		if err != nil {
			return nil, err
		}
		e, err := m.EmitProb(k, seq[0])
		if err != nil {
			return nil, err
		}
		sum[ki] = a * e * b.cells[m.rows[k]][1]
	}
	b.cells[m.rows[m.Begin()]][0] = floats.Sum(sum)

	return b, nil
}
