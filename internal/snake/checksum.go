package snake

import "cellsnake/internal/core"

// Checksum sums the ages of every cell whose age lies in [lo, hi].
func Checksum(f *core.Field, lo, hi int) int {
	sum := 0
	for _, v := range f.Cells() {
		age := Cell(v).Age()
		if age >= lo && age <= hi {
			sum += age
		}
	}
	return sum
}

// Triangular returns 1 + 2 + ... + n, the checksum of a consistent snake of
// length n.
func Triangular(n int) int { return n * (n + 1) / 2 }
