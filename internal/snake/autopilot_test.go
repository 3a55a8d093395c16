package snake

import "testing"

func TestAutopilotTurnsTowardApple(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	g.apple, g.hasApple = Coord{Row: 9, Col: 5}, true
	if sym := Autopilot(g); sym != SymRight {
		t.Fatalf("Autopilot = %q, want right", rune(sym))
	}
}

func TestAutopilotKeepsHeadingWhenAligned(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	g.apple, g.hasApple = Coord{Row: 4, Col: 0}, true
	if sym := Autopilot(g); sym != NoInput {
		t.Fatalf("Autopilot = %q, want no input", rune(sym))
	}
}

func TestAutopilotAvoidsBody(t *testing.T) {
	g := loopGame(t)
	// Up enters the vacating tail, every other way hits the body.
	g.apple, g.hasApple = Coord{Row: 1, Col: 1}, true
	if sym := Autopilot(g); sym != NoInput {
		t.Fatalf("Autopilot = %q, want to keep heading up", rune(sym))
	}
}

func TestAutopilotPlaysConsistently(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	for i := 0; i < 400 && !g.State().Done(); i++ {
		g.Handle(Autopilot(g))
		g.Tick()
	}
	if g.Snake().Length <= 3 {
		t.Fatalf("autopilot never ate: length %d", g.Snake().Length)
	}
}
