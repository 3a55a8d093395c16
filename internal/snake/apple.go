package snake

import (
	"cellsnake/internal/core"
	rng "cellsnake/pkg/core"
)

// spawnProbes bounds the rejection sampling before falling back to a scan.
const spawnProbes = 64

// SpawnApple picks a uniformly random empty cell. It samples a bounded number
// of random cells first, then chooses among all empty cells found by a full
// scan. ok is false when the board has no empty cell.
func SpawnApple(f *core.Field, r *rng.RNG) (Coord, bool) {
	for i := 0; i < spawnProbes; i++ {
		row, col := r.Cell(f.Rows, f.Cols)
		if !Cell(f.Get(row, col)).Active() {
			return Coord{Row: row, Col: col}, true
		}
	}

	cells := f.Cells()
	empty := 0
	for _, v := range cells {
		if !Cell(v).Active() {
			empty++
		}
	}
	if empty == 0 {
		return Coord{}, false
	}
	pick := r.IntN(empty)
	for i, v := range cells {
		if Cell(v).Active() {
			continue
		}
		if pick == 0 {
			return Coord{Row: i / f.Cols, Col: i % f.Cols}, true
		}
		pick--
	}
	return Coord{}, false
}
