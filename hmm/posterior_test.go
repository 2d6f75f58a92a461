package hmm

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestPosterior(t *testing.T) {

	m := makeNucleotideModel(t)
	seq := symbols("ATGCG")
	g, e := Posterior(m, seq)
	if e != nil {
		t.Fatal(e)
	}

	// Sentinel cells carry the full mass.
	v, _ := g.AtState("b", 0)
	compareFloats(t, 1.0, v, "begin occupancy")
	v, _ = g.AtState("e", 6)
	compareFloats(t, 1.0, v, "end occupancy")

	// Each observation column is a distribution over the emitting states.
	for j := 1; j <= len(seq); j++ {
		y, _ := g.AtState("y", j)
		n, _ := g.AtState("n", j)
		compareFloats(t, 1.0, y+n, "column sum")
		if y < 0 || y > 1 || n < 0 || n > 1 {
			t.Errorf("occupancy out of [0,1] at column %d: y=%e n=%e", j, y, n)
		}
	}

	// Occupancies are the normalized forward-backward products.
	f, _ := Forward(m, seq)
	b, _ := Backward(m, seq)
	total, _ := f.AtState("e", 6)
	for j := 1; j <= len(seq); j++ {
		fy, _ := f.AtState("y", j)
		by, _ := b.AtState("y", j)
		gy, _ := g.AtState("y", j)
		compareFloats(t, fy*by/total, gy, "gamma(y)")
	}
}

func TestPosteriorZeroProbability(t *testing.T) {

	states := []string{"b", "s", "e"}
	trans := map[string]map[string]float64{
		"b": {"s": 1.0},
		"s": {"s": 0.5, "e": 0.5},
	}
	emit := map[string]map[string]float64{
		"s": {"x": 0.0, "y": 1.0},
	}
	m, e := NewModel(states, trans, emit)
	if e != nil {
		t.Fatal(e)
	}

	if _, e := Posterior(m, symbols("x")); e != ErrZeroProbability {
		t.Fatalf("expected ErrZeroProbability, got %v", e)
	}
}

func TestTableDense(t *testing.T) {

	m := makeNucleotideModel(t)
	f, e := Forward(m, symbols("AT"))
	if e != nil {
		t.Fatal(e)
	}

	d := f.Dense()
	r, c := d.Dims()
	if r != f.NumStates() || c != f.NumCols() {
		t.Fatalf("dense shape %dx%d, table %dx%d", r, c, f.NumStates(), f.NumCols())
	}
	if !floats.Equal(d.RawRowView(0), []float64{1, 0, 0, 0}) {
		t.Fatalf("wrong begin row: %v", d.RawRowView(0))
	}

	// Dense returns a copy.
	d.Set(0, 0, 42)
	if f.At(0, 0) != 1 {
		t.Fatal("Dense aliases the table")
	}
}
