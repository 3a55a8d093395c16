package snake

import (
	"testing"

	"cellsnake/internal/core"
	rng "cellsnake/pkg/core"
)

func TestSpawnAppleAvoidsBody(t *testing.T) {
	f, _ := core.NewField(4, 4)
	for i := range f.Cells() {
		f.Cells()[i] = uint8(Pack(Up, 1+i%5))
	}
	f.Set(2, 3, 0)

	r := rng.NewRNG(3)
	for i := 0; i < 20; i++ {
		at, ok := SpawnApple(f, r)
		if !ok {
			t.Fatal("one empty cell is left, spawn must succeed")
		}
		if at != (Coord{Row: 2, Col: 3}) {
			t.Fatalf("spawned on %v, want the only empty cell (2,3)", at)
		}
	}
}

func TestSpawnAppleFullBoard(t *testing.T) {
	f, _ := core.NewField(2, 3)
	for i := range f.Cells() {
		f.Cells()[i] = uint8(Pack(Left, 2))
	}
	if _, ok := SpawnApple(f, rng.NewRNG(1)); ok {
		t.Fatal("a full board has nowhere to put an apple")
	}
}

func TestSpawnAppleTreatsDirectionOnlyCellsAsEmpty(t *testing.T) {
	f, _ := core.NewField(1, 2)
	f.Set(0, 0, uint8(Pack(Down, 0)))
	f.Set(0, 1, uint8(Pack(Down, 4)))
	at, ok := SpawnApple(f, rng.NewRNG(9))
	if !ok || at != (Coord{Row: 0, Col: 0}) {
		t.Fatalf("SpawnApple = (%v,%v), want (0,0)", at, ok)
	}
}

func TestSpawnAppleCoversBoard(t *testing.T) {
	f, _ := core.NewField(2, 2)
	r := rng.NewRNG(11)
	counts := make(map[Coord]int)
	const draws = 4000
	for i := 0; i < draws; i++ {
		at, ok := SpawnApple(f, r)
		if !ok {
			t.Fatal("empty board must always spawn")
		}
		counts[at]++
	}
	if len(counts) != 4 {
		t.Fatalf("expected all 4 cells to be chosen, got %v", counts)
	}
	for at, n := range counts {
		if n < draws/4-200 || n > draws/4+200 {
			t.Fatalf("cell %v drawn %d times, far from uniform", at, n)
		}
	}
}

func TestSpawnAppleDeterministic(t *testing.T) {
	f, _ := core.NewField(10, 30)
	a, _ := SpawnApple(f, rng.NewRNG(5))
	b, _ := SpawnApple(f, rng.NewRNG(5))
	if a != b {
		t.Fatalf("same seed spawned %v and %v", a, b)
	}
}
