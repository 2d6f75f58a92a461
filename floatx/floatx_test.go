package floatx

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestFlatten2D(t *testing.T) {

	s2d := [][]float64{{11, 22}, {33, 44}, {55, 66}}
	expected := []float64{11, 22, 33, 44, 55, 66}

	flatten := Flatten2D(s2d)
	if !floats.Equal(flatten, expected) {
		t.Fatalf("Flatten failed. expected %+v, got %+v", expected, flatten)
	}
}

func TestMakeFloat2D(t *testing.T) {

	s := MakeFloat2D(3, 4)
	n1, n2 := Check2D(s)
	if n1 != 3 || n2 != 4 {
		t.Fatalf("wrong shape. expected 3x4, got %dx%d", n1, n2)
	}
	for i, row := range s {
		for j, v := range row {
			if v != 0 {
				t.Fatalf("cell [%d][%d] not zero: %f", i, j, v)
			}
		}
	}
}

func TestMakeString2D(t *testing.T) {

	s := MakeString2D(2, 5, "b")
	n1, n2 := CheckString2D(s)
	if n1 != 2 || n2 != 5 {
		t.Fatalf("wrong shape. expected 2x5, got %dx%d", n1, n2)
	}
	for i, row := range s {
		for j, v := range row {
			if v != "b" {
				t.Fatalf("cell [%d][%d] not default: %q", i, j, v)
			}
		}
	}
}

func TestApplyScale(t *testing.T) {

	in := []float64{2, 4, 8}
	out := Apply(ScaleFunc(0.5), in, nil)
	if !floats.Equal(out, []float64{1, 2, 4}) {
		t.Fatalf("scale failed, got %+v", out)
	}
}

func TestClear2D(t *testing.T) {

	s := [][]float64{{1, 2}, {3, 4}}
	Clear2D(s)
	if !floats.Equal(Flatten2D(s), []float64{0, 0, 0, 0}) {
		t.Fatalf("clear failed, got %+v", s)
	}
}

func TestCheck2DRagged(t *testing.T) {

	defer func() {
		if r := recover(); r != ErrRagged {
			t.Fatalf("expected ErrRagged panic, got %v", r)
		}
	}()
	Check2D([][]float64{{1, 2}, {3}})
}
