package hmm

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

// Two-emitting-state nucleotide model: y is GC rich, n is uniform.
func makeNucleotideModel(t *testing.T) *Model {

	states := []string{"b", "y", "n", "e"}
	trans := map[string]map[string]float64{
		"b": {"y": 0.2, "n": 0.8},
		"y": {"y": 0.7, "n": 0.2, "e": 0.1},
		"n": {"n": 0.8, "y": 0.1, "e": 0.1},
	}
	emit := map[string]map[string]float64{
		"y": {"A": 0.1, "C": 0.4, "G": 0.4, "T": 0.1},
		"n": {"A": 0.25, "C": 0.25, "G": 0.25, "T": 0.25},
	}
	m, e := NewModel(states, trans, emit)
	if e != nil {
		t.Fatal(e)
	}
	return m
}

// Three-emitting-state weather model over up/down barometer readings.
func makeWeatherModel(t *testing.T) *Model {

	states := []string{"^", "r", "s", "c", "$"}
	trans := map[string]map[string]float64{
		"^": {"r": 0.5, "s": 0.3, "c": 0.2},
		"r": {"r": 0.6, "s": 0.2, "c": 0.1, "$": 0.1},
		"s": {"r": 0.3, "s": 0.4, "c": 0.2, "$": 0.1},
		"c": {"r": 0.2, "s": 0.3, "c": 0.4, "$": 0.1},
	}
	emit := map[string]map[string]float64{
		"r": {"u": 0.8, "d": 0.2},
		"s": {"u": 0.1, "d": 0.9},
		"c": {"u": 0.4, "d": 0.6},
	}
	m, e := NewModel(states, trans, emit)
	if e != nil {
		t.Fatal(e)
	}
	return m
}

func symbols(s string) []string {
	return strings.Split(s, "")
}

func compareFloats(t *testing.T, expected, actual float64, message string) {
	if !scalar.EqualWithinAbsOrRel(expected, actual, tol, tol) {
		t.Errorf("[%s]. Expected: [%e], Got: [%e]", message, expected, actual)
	}
}
