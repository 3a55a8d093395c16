package term

import (
	"context"
	"unicode"

	"cellsnake/internal/snake"

	"github.com/gdamore/tcell/v2"
)

// Input turns tcell key events into snake symbols. Events are read by a
// background goroutine and queued, so Poll never blocks and no key is lost
// between ticks.
type Input struct {
	events chan tcell.Event
	done   chan struct{}
}

// NewInput starts reading events from s. Close stops the reader.
func NewInput(s tcell.Screen) *Input {
	in := &Input{
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case in.events <- ev:
			case <-in.done:
				return
			}
		}
	}()
	return in
}

// Close stops forwarding events. The reader goroutine exits once the screen
// is finalized.
func (in *Input) Close() {
	select {
	case <-in.done:
	default:
		close(in.done)
	}
}

// Poll returns the next queued symbol, or snake.NoInput when nothing is
// pending. Events that are not recognized keys are dropped.
func (in *Input) Poll() snake.Symbol {
	for {
		select {
		case ev := <-in.events:
			if sym := symbolOf(ev); sym != snake.NoInput {
				return sym
			}
		default:
			return snake.NoInput
		}
	}
}

// Wait blocks until a recognized symbol arrives. It returns snake.SymQuit
// when ctx is cancelled.
func (in *Input) Wait(ctx context.Context) snake.Symbol {
	for {
		select {
		case ev := <-in.events:
			if sym := symbolOf(ev); sym != snake.NoInput {
				return sym
			}
		case <-ctx.Done():
			return snake.SymQuit
		}
	}
}

func symbolOf(ev tcell.Event) snake.Symbol {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return snake.NoInput
	}
	switch key.Key() {
	case tcell.KeyUp:
		return snake.SymUp
	case tcell.KeyLeft:
		return snake.SymLeft
	case tcell.KeyRight:
		return snake.SymRight
	case tcell.KeyDown:
		return snake.SymDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return snake.SymQuit
	case tcell.KeyRune:
		switch sym := snake.Symbol(unicode.ToLower(key.Rune())); sym {
		case snake.SymUp, snake.SymLeft, snake.SymRight, snake.SymDown, snake.SymPause, snake.SymQuit:
			return sym
		}
	}
	return snake.NoInput
}
