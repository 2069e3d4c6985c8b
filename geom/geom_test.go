package geom

import "testing"

func TestVecArithmetic(t *testing.T) {
	a := Vec{X: 3, Y: -2}
	b := Vec{X: 1, Y: 4}

	if got := a.Add(b); got != (Vec{X: 4, Y: 2}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec{X: 2, Y: -6}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Mul(2); got != (Vec{X: 6, Y: -4}) {
		t.Errorf("Mul: got %v", got)
	}
	if got := a.MulVec(b); got != (Vec{X: 3, Y: -8}) {
		t.Errorf("MulVec: got %v", got)
	}
}

func TestVecFloorRound(t *testing.T) {
	v := Vec{X: 1.7, Y: -1.2}

	if got := v.Floor(); got != (Vec{X: 1, Y: -2}) {
		t.Errorf("Floor: got %v", got)
	}
	if got := v.Round(); got != (Vec{X: 2, Y: -1}) {
		t.Errorf("Round: got %v", got)
	}
}

func TestAreaContainsInclusiveBounds(t *testing.T) {
	a := Area{Start: Vec{X: 10, Y: 20}, Size: Vec{X: 30, Y: 40}}

	corners := []Vec{
		{X: 10, Y: 20},
		{X: 40, Y: 20},
		{X: 10, Y: 60},
		{X: 40, Y: 60},
	}
	for _, p := range corners {
		if !a.Contains(p) {
			t.Errorf("expected corner %v to be contained", p)
		}
	}

	outside := []Vec{
		{X: 9, Y: 20},
		{X: 41, Y: 20},
		{X: 10, Y: 19},
		{X: 10, Y: 61},
	}
	for _, p := range outside {
		if a.Contains(p) {
			t.Errorf("expected %v to be outside", p)
		}
	}
}

func TestAreaContainsZeroSize(t *testing.T) {
	a := Area{Start: Vec{X: 5, Y: 5}}

	if !a.Contains(Vec{X: 5, Y: 5}) {
		t.Errorf("zero-size area should contain its own start")
	}
	if a.Contains(Vec{X: 5, Y: 6}) {
		t.Errorf("zero-size area should contain nothing else")
	}
}
