package snake

import (
	"testing"

	"cellsnake/internal/core"
)

func TestTriangular(t *testing.T) {
	for n, want := range []int{0, 1, 3, 6, 10, 15} {
		if got := Triangular(n); got != want {
			t.Fatalf("Triangular(%d) = %d, want %d", n, got, want)
		}
	}
	if got := Triangular(MaxAge); got != 2016 {
		t.Fatalf("Triangular(MaxAge) = %d, want 2016", got)
	}
}

func TestChecksumWindow(t *testing.T) {
	f, err := core.NewField(2, 3)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	f.Set(0, 0, uint8(Pack(Right, 1)))
	f.Set(0, 1, uint8(Pack(Down, 2)))
	f.Set(0, 2, uint8(Pack(Left, 3)))
	f.Set(1, 0, uint8(Pack(Up, 7)))
	// Direction bits alone carry no age and must not count.
	f.Set(1, 1, uint8(Pack(Down, 0)))

	if got := Checksum(f, 1, 3); got != 6 {
		t.Fatalf("Checksum(1,3) = %d, want 6", got)
	}
	if got := Checksum(f, 1, 7); got != 13 {
		t.Fatalf("Checksum(1,7) = %d, want 13", got)
	}
	if got := Checksum(f, 2, 2); got != 2 {
		t.Fatalf("Checksum(2,2) = %d, want 2", got)
	}
}
