package term

import (
	"context"
	"testing"
	"time"

	"cellsnake/internal/snake"

	"github.com/gdamore/tcell/v2"
)

func TestSymbolOfKeys(t *testing.T) {
	cases := []struct {
		ev   tcell.Event
		want snake.Symbol
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), snake.SymUp},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), snake.SymLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), snake.SymRight},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), snake.SymDown},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), snake.SymUp},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), snake.SymPause},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), snake.SymQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), snake.SymQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), snake.NoInput},
		{tcell.NewEventResize(80, 24), snake.NoInput},
	}
	for i, tc := range cases {
		if got := symbolOf(tc.ev); got != tc.want {
			t.Fatalf("case %d: symbolOf = %q, want %q", i, rune(got), rune(tc.want))
		}
	}
}

func TestInputQueuesKeysInOrder(t *testing.T) {
	screen := newSimScreen(t)
	in := NewInput(screen)
	defer in.Close()

	if sym := in.Poll(); sym != snake.NoInput {
		t.Fatalf("Poll on empty queue = %q, want no input", rune(sym))
	}

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 's', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if sym := in.Wait(ctx); sym != snake.SymRight {
		t.Fatalf("first symbol = %q, want d", rune(sym))
	}
	if sym := in.Wait(ctx); sym != snake.SymDown {
		t.Fatalf("second symbol = %q, want s", rune(sym))
	}
}

func TestWaitReturnsQuitOnCancel(t *testing.T) {
	screen := newSimScreen(t)
	in := NewInput(screen)
	defer in.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if sym := in.Wait(ctx); sym != snake.SymQuit {
		t.Fatalf("Wait after cancel = %q, want quit", rune(sym))
	}
}
