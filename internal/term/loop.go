package term

import (
	"context"
	"time"

	"cellsnake/internal/snake"
)

// Cues receives game events worth a sound.
type Cues interface {
	Eat()
	Crash()
}

type silent struct{}

func (silent) Eat()   {}
func (silent) Crash() {}

// Options tune the terminal game loop.
type Options struct {
	// TPS is the number of ticks per second.
	TPS int
	// Autopilot steers whenever no key is pending.
	Autopilot bool
	// Cues is optional.
	Cues Cues
}

// Source supplies one symbol per tick and blocks while the game is paused.
type Source interface {
	Poll() snake.Symbol
	Wait(ctx context.Context) snake.Symbol
}

// Frame draws one frame of the game.
type Frame interface {
	Draw(g *snake.Game)
}

// Run drives g until it ends or ctx is cancelled. Each tick consumes at most
// one symbol, checks the board, draws it and only then advances it, so the
// frame on screen is the state that was verified.
func Run(ctx context.Context, g *snake.Game, in Source, out Frame, opts Options) snake.Report {
	cues := opts.Cues
	if cues == nil {
		cues = silent{}
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = 8
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		sym := in.Poll()
		if sym == snake.NoInput && opts.Autopilot {
			sym = snake.Autopilot(g)
		}
		g.Handle(sym)

		for g.State() == snake.Paused {
			out.Draw(g)
			g.Handle(in.Wait(ctx))
		}
		if g.State().Done() {
			break
		}

		length := g.Snake().Length
		if g.Prepare() != snake.Running {
			break
		}
		if g.Snake().Length > length {
			cues.Eat()
		}
		out.Draw(g)
		g.Advance()

		select {
		case <-ctx.Done():
			g.Handle(snake.SymQuit)
		case <-ticker.C:
		}
		if g.State().Done() {
			break
		}
	}

	if g.State() == snake.GameOver {
		cues.Crash()
	}
	out.Draw(g)
	return g.Report()
}
