package hmm

import "github.com/okulab/trellis/floatx"

// Posterior computes the state occupancy probabilities
//
//	γ(i,j) = F(i,j) B(i,j) / P(O)
//
// from one forward and one backward pass, where P(O) is the terminal
// forward probability. Each observation column of the result sums to one
// over the emitting states; the sentinel cells for begin at column 0 and
// end at column L+1 are exactly one.
//
// If P(O) is zero the ratios are undefined and ErrZeroProbability is
// returned.
func Posterior(m *Model, seq []string) (*Table, error) {

	f, err := Forward(m, seq)
	if err != nil {
		return nil, err
	}
	b, err := Backward(m, seq)
	if err != nil {
		return nil, err
	}

	l := len(seq)
	total := f.cells[m.rows[m.End()]][l+1]
	if total == 0 {
		return nil, ErrZeroProbability
	}

	g := newTable(m, l)
	for r := range g.cells {
		for j := range g.cells[r] {
			g.cells[r][j] = f.cells[r][j] * b.cells[r][j]
		}
		floatx.Apply(floatx.ScaleFunc(1/total), g.cells[r], nil)
	}
	return g, nil
}
