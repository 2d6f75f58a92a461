package hmm

import (
	"github.com/okulab/trellis/floatx"
	"gonum.org/v1/gonum/mat"
)

// Table is an N x (L+2) probability grid with one row per model state, in
// state order. Column 0 and column L+1 are the begin and end sentinel
// positions; columns 1..L correspond one to one with observation
// positions. A Table is written only by the sweep that allocates it and is
// read-only afterwards.
type Table struct {
	states []string
	rows   map[string]int
	cells  [][]float64
}

func newTable(m *Model, l int) *Table {
	return &Table{
		states: m.states,
		rows:   m.rows,
		cells:  floatx.MakeFloat2D(m.N(), l+2),
	}
}

// NumStates returns the number of rows.
func (t *Table) NumStates() int { return len(t.cells) }

// NumCols returns the number of columns, sentinels included.
func (t *Table) NumCols() int { return len(t.cells[0]) }

// NumObs returns the observation sequence length L.
func (t *Table) NumObs() int { return len(t.cells[0]) - 2 }

// StateAt returns the label of row i.
func (t *Table) StateAt(i int) string { return t.states[i] }

// At returns the cell value at row i, column j.
func (t *Table) At(i, j int) float64 { return t.cells[i][j] }

// AtState returns the cell value for a state label at column j.
func (t *Table) AtState(state string, j int) (float64, error) {
	r, ok := t.rows[state]
	if !ok {
		return 0, &UnknownStateError{State: state}
	}
	return t.cells[r][j], nil
}

// Dense copies the grid into a gonum dense matrix for display or further
// numeric work. The Table itself is not aliased.
func (t *Table) Dense() *mat.Dense {
	n1, n2 := floatx.Check2D(t.cells)
	return mat.NewDense(n1, n2, floatx.Flatten2D(t.cells))
}

// LabelTable is a grid with the same shape and row order as Table whose
// cells hold state labels. The Viterbi sweep records its winning
// predecessors in one.
type LabelTable struct {
	states []string
	rows   map[string]int
	cells  [][]string
}

func newLabelTable(m *Model, l int, def string) *LabelTable {
	return &LabelTable{
		states: m.states,
		rows:   m.rows,
		cells:  floatx.MakeString2D(m.N(), l+2, def),
	}
}

// NumStates returns the number of rows.
func (t *LabelTable) NumStates() int { return len(t.cells) }

// NumCols returns the number of columns, sentinels included.
func (t *LabelTable) NumCols() int {
	_, n2 := floatx.CheckString2D(t.cells)
	return n2
}

// NumObs returns the observation sequence length L.
func (t *LabelTable) NumObs() int { return t.NumCols() - 2 }

// StateAt returns the label of row i.
func (t *LabelTable) StateAt(i int) string { return t.states[i] }

// At returns the cell label at row i, column j.
func (t *LabelTable) At(i, j int) string { return t.cells[i][j] }

// AtState returns the cell label for a state label at column j.
func (t *LabelTable) AtState(state string, j int) (string, error) {
	r, ok := t.rows[state]
	if !ok {
		return "", &UnknownStateError{State: state}
	}
	return t.cells[r][j], nil
}
