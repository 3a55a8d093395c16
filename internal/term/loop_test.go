package term

import (
	"context"
	"testing"

	"cellsnake/internal/snake"
)

type scriptedSource struct {
	polls []snake.Symbol
	waits []snake.Symbol
}

func (s *scriptedSource) Poll() snake.Symbol {
	if len(s.polls) == 0 {
		return snake.NoInput
	}
	sym := s.polls[0]
	s.polls = s.polls[1:]
	return sym
}

func (s *scriptedSource) Wait(context.Context) snake.Symbol {
	if len(s.waits) == 0 {
		return snake.SymQuit
	}
	sym := s.waits[0]
	s.waits = s.waits[1:]
	return sym
}

type countingFrame struct{ frames int }

func (f *countingFrame) Draw(*snake.Game) { f.frames++ }

type recordingCues struct{ eats, crashes int }

func (c *recordingCues) Eat()   { c.eats++ }
func (c *recordingCues) Crash() { c.crashes++ }

const fastTPS = 1000

func TestRunStopsOnQuit(t *testing.T) {
	g, _ := snake.New(snake.DefaultConfig())
	src := &scriptedSource{polls: []snake.Symbol{snake.NoInput, snake.SymRight, snake.SymQuit}}
	frame := &countingFrame{}

	report := Run(context.Background(), g, src, frame, Options{TPS: fastTPS})

	if report.State != snake.Quit {
		t.Fatalf("state = %v, want quit", report.State)
	}
	if report.Ticks != 2 {
		t.Fatalf("report = %+v, want 2 ticks", report)
	}
	if frame.frames != 3 {
		t.Fatalf("frames = %d, want one per tick plus the final frame", frame.frames)
	}
	if g.Snake().Direction != snake.Right {
		t.Fatalf("direction = %v, want right", g.Snake().Direction)
	}
}

func TestRunPausesWithoutTicking(t *testing.T) {
	g, _ := snake.New(snake.DefaultConfig())
	src := &scriptedSource{
		polls: []snake.Symbol{snake.SymPause, snake.SymQuit},
		waits: []snake.Symbol{'x', snake.SymPause},
	}

	report := Run(context.Background(), g, src, &countingFrame{}, Options{TPS: fastTPS})

	if report.Ticks != 1 {
		t.Fatalf("ticks = %d, the pause must not advance the game", report.Ticks)
	}
}

func TestRunReportsCrash(t *testing.T) {
	g, _ := snake.New(snake.Config{Rows: 3, Cols: 3, Length: 5, MaxLength: 5, Seed: 1})
	cues := &recordingCues{}

	report := Run(context.Background(), g, &scriptedSource{}, &countingFrame{}, Options{TPS: fastTPS, Cues: cues})

	if report.State != snake.GameOver && report.State != snake.Full {
		t.Fatalf("state = %v, a length-5 snake cannot survive on a 3x3 board", report.State)
	}
	if report.State == snake.GameOver && cues.crashes != 1 {
		t.Fatalf("crash cues = %d, want 1", cues.crashes)
	}
}

func TestRunHonoursCancel(t *testing.T) {
	g, _ := snake.New(snake.DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := Run(ctx, g, &scriptedSource{}, &countingFrame{}, Options{TPS: fastTPS})
	if report.State != snake.Quit {
		t.Fatalf("state = %v, want quit after cancel", report.State)
	}
}
