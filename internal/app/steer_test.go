package app

import (
	"testing"

	"cellsnake/internal/snake"
)

func TestQueueMovementKeepsFirstKey(t *testing.T) {
	got := queueMovement(snake.SymLeft, snake.SymDown, snake.Running)
	if got != snake.SymLeft {
		t.Fatalf("queued %q, want %q", got, snake.SymLeft)
	}
	got = queueMovement(snake.NoInput, snake.SymDown, snake.Running)
	if got != snake.SymDown {
		t.Fatalf("queued %q, want %q", got, snake.SymDown)
	}
}

func TestQueueMovementDropsKeysWhilePaused(t *testing.T) {
	for _, st := range []snake.State{snake.Paused, snake.GameOver, snake.Quit, snake.Full} {
		if got := queueMovement(snake.SymLeft, snake.SymDown, st); got != snake.NoInput {
			t.Fatalf("state %s queued %q, want no input", st, got)
		}
	}
}

func TestPausedKeyDoesNotSteerAfterResume(t *testing.T) {
	cfg := snake.DefaultConfig()
	g, err := snake.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	g.Handle(snake.SymPause)
	pending := queueMovement(snake.NoInput, snake.SymRight, g.State())
	g.Handle(snake.SymPause)
	pending = queueMovement(pending, snake.NoInput, g.State())

	g.Handle(pending)
	g.Tick()
	if d := g.Snake().Direction; d != snake.Up {
		t.Fatalf("direction after resume = %s, want %s", d, snake.Up)
	}
}
