package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		ar, ac := a.Cell(10, 30)
		br, bc := b.Cell(10, 30)
		if ar != br || ac != bc {
			t.Fatalf("draw %d diverged: (%d,%d) vs (%d,%d)", i, ar, ac, br, bc)
		}
		if ar < 0 || ar >= 10 || ac < 0 || ac >= 30 {
			t.Fatalf("draw %d out of range: (%d,%d)", i, ar, ac)
		}
	}
}

func TestRNGIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if got := r.IntN(-3); got != 0 {
		t.Fatalf("IntN(-3) = %d, want 0", got)
	}
}
