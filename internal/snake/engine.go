package snake

import (
	"fmt"

	"cellsnake/internal/core"
	rng "cellsnake/pkg/core"
)

// State is the lifecycle of one game.
type State uint8

const (
	Running State = iota
	Paused
	// GameOver follows a checksum mismatch, which only a self-collision causes.
	GameOver
	// Quit follows the quit symbol.
	Quit
	// Full means no empty cell was left for an apple.
	Full
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	case Quit:
		return "quit"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Done reports whether the tick loop should stop.
func (s State) Done() bool { return s == GameOver || s == Quit || s == Full }

// Snake is the scalar state kept alongside the grid. The head cell always
// holds Pack(Direction, Length).
type Snake struct {
	Head      Coord
	Length    int
	Direction Direction
}

// Report is what a finished game exposes for printing.
type Report struct {
	Length int
	Ticks  int
	State  State
}

func (r Report) String() string {
	return fmt.Sprintf("%d points\nturn %d", r.Length, r.Ticks)
}

// Game owns the board and everything that changes from tick to tick.
type Game struct {
	cfg Config

	field   *core.Field
	scratch *core.Field

	snake    Snake
	apple    Coord
	hasApple bool

	// settle is subtracted from the next expected checksum after growth.
	settle int
	ticks  int
	state  State

	random *rng.RNG
}

// New allocates a game and places the starting snake.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	field, err := core.NewField(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg, field: field, scratch: field.Clone()}
	g.Reset(cfg.Seed)
	return g, nil
}

// Name returns the simulation identifier.
func (g *Game) Name() string { return "snake" }

// Size reports the board dimensions.
func (g *Game) Size() core.Size { return core.Size{W: g.cfg.Cols, H: g.cfg.Rows} }

// Cells exposes the encoded board in row-major order.
func (g *Game) Cells() []uint8 { return g.field.Cells() }

// Field exposes the live board.
func (g *Game) Field() *core.Field { return g.field }

// Snake returns a copy of the scalar snake state.
func (g *Game) Snake() Snake { return g.snake }

// Apple returns the apple position; ok is false when none is placed.
func (g *Game) Apple() (Coord, bool) { return g.apple, g.hasApple }

// Marker adapts Apple for front ends that only know about x/y grids.
func (g *Game) Marker() (x, y int, ok bool) { return g.apple.Col, g.apple.Row, g.hasApple }

// State returns the current lifecycle state.
func (g *Game) State() State { return g.state }

// Ticks returns the number of checks performed so far.
func (g *Game) Ticks() int { return g.ticks }

// Report returns the final length and tick count.
func (g *Game) Report() Report {
	return Report{Length: g.snake.Length, Ticks: g.ticks, State: g.state}
}

// Reset clears the board and seeds a new head at the bottom-left corner
// heading up. The rest of the body unfurls behind it over the first Length
// ticks.
func (g *Game) Reset(seed int64) {
	g.field.Clear()
	g.random = rng.NewRNG(seed)
	g.snake = Snake{
		Head:      Coord{Row: g.cfg.Rows - 1, Col: 0},
		Length:    g.cfg.Length,
		Direction: Up,
	}
	g.field.Set(g.snake.Head.Row, g.snake.Head.Col, uint8(Pack(g.snake.Direction, g.snake.Length)))
	g.apple = Coord{}
	g.hasApple = false
	g.settle = 0
	g.ticks = 0
	g.state = Running
}

// Step runs one full tick.
func (g *Game) Step() { g.Tick() }

// Tick runs Prepare and, if the game survives it, Advance.
func (g *Game) Tick() State {
	if g.Prepare() == Running {
		g.Advance()
	}
	return g.state
}

// Prepare places or eats the apple and verifies the board checksum against
// the snake length. It counts as one elapsed tick. A mismatch ends the game
// once more ticks than the snake is long have passed; before that the body
// is still unfurling and mismatches are expected.
func (g *Game) Prepare() State {
	if g.state != Running {
		return g.state
	}

	if !g.hasApple {
		at, ok := SpawnApple(g.field, g.random)
		if !ok {
			g.state = Full
			return g.state
		}
		g.apple, g.hasApple = at, true
	} else if g.snake.Head == g.apple {
		g.grow()
		g.hasApple = false
	}

	observed := Checksum(g.field, 1, g.snake.Length)
	expected := Triangular(g.snake.Length) - g.settle
	if g.settle > 0 {
		g.settle--
	}

	g.ticks++
	if g.ticks > g.snake.Length && observed != expected {
		g.state = GameOver
	}
	return g.state
}

// grow lengthens the snake by one and shifts every active age up so the
// ages stay a contiguous 1..Length run. At MaxLength the apple is eaten
// without growth.
func (g *Game) grow() {
	if g.snake.Length >= g.cfg.MaxLength {
		return
	}
	cells := g.field.Cells()
	for i, v := range cells {
		c := Cell(v)
		if !c.Active() {
			continue
		}
		d, age := c.Unpack()
		cells[i] = uint8(Pack(d, age+1))
	}
	g.snake.Length++
	g.settle = 1
}

// Advance applies the transition rule to every cell. Reads come from the
// live board, writes go to the scratch board, which is then committed.
// Every body cell decays by one. The head cell also emits a new head one
// step ahead in the snake's current direction; heads are written after all
// decays so a head entering the cell a tail vacates survives.
func (g *Game) Advance() {
	if g.state != Running {
		return
	}
	rows, cols := g.cfg.Rows, g.cfg.Cols
	length := g.snake.Length

	g.scratch.CopyFrom(g.field)
	in := g.field.Cells()
	out := g.scratch.Cells()

	var heads []Coord
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			cell := Cell(in[idx])
			if !cell.Active() {
				continue
			}
			d, age := cell.Unpack()
			if age == length {
				heads = append(heads, Step(rows, cols, Coord{Row: r, Col: c}, g.snake.Direction))
			}
			if age == 1 {
				out[idx] = 0
				continue
			}
			out[idx] = uint8(Pack(d, age-1))
		}
	}

	head := uint8(Pack(g.snake.Direction, length))
	for _, next := range heads {
		g.scratch.Set(next.Row, next.Col, head)
		g.snake.Head = next
	}

	g.field.CopyFrom(g.scratch)
}

// Handle applies one input symbol: movement symbols steer, the pause
// symbol toggles the pause, the quit symbol ends the game.
func (g *Game) Handle(sym Symbol) {
	switch sym {
	case NoInput:
	case SymQuit:
		if !g.state.Done() {
			g.state = Quit
		}
	case SymPause:
		switch g.state {
		case Running:
			g.state = Paused
		case Paused:
			g.state = Running
		}
	default:
		if g.state != Running {
			return
		}
		if d, ok := Resolve(sym, g.snake.Direction); ok {
			g.SetDirection(d)
		}
	}
}

// SetDirection stores the heading used by the next head movement and
// returns the heading now in effect. Invalid values are ignored.
func (g *Game) SetDirection(d Direction) Direction {
	if d <= Down {
		g.snake.Direction = d
	}
	return g.snake.Direction
}

func init() {
	core.Register("snake", func(cfg map[string]string) (core.Sim, error) {
		g, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
