//go:build ebiten

package app

import (
	"time"

	"cellsnake/internal/core"
	"cellsnake/internal/render"
	"cellsnake/internal/snake"
	"cellsnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

// controller is implemented by sims that take keyboard symbols.
type controller interface {
	Handle(sym snake.Symbol)
	State() snake.State
}

type markerProvider interface {
	Marker() (x, y int, ok bool)
}

// Game adapts a core simulation to the ebiten.Game interface. ebiten calls
// Update at 60 TPS; the simulation itself steps at its own rate.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep

	scale   int
	seed    int64
	pending snake.Symbol
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, tps int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, hudWidth),
		stepper: core.NewFixedStep(tps),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.pending = snake.NoInput
	g.stepper.Hold()
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	ctl, steerable := g.sim.(controller)

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if steerable {
			ctl.Handle(snake.SymQuit)
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(time.Now().UnixNano())
	}

	if steerable {
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			ctl.Handle(snake.SymPause)
			g.stepper.Hold()
		}
		g.pending = queueMovement(g.pending, pressedMovement(), ctl.State())
		if ctl.State() != snake.Running {
			g.hud.Update()
			return nil
		}
	}

	if g.stepper.ShouldStep() {
		if steerable {
			ctl.Handle(g.pending)
			g.pending = snake.NoInput
		}
		g.sim.Step()
	}
	g.hud.Update()
	return nil
}

// pressedMovement returns the first movement key pressed this frame.
func pressedMovement() snake.Symbol {
	keys := []struct {
		sym  snake.Symbol
		keys []ebiten.Key
	}{
		{snake.SymUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
		{snake.SymLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
		{snake.SymRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
		{snake.SymDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	}
	for _, k := range keys {
		for _, key := range k.keys {
			if inpututil.IsKeyJustPressed(key) {
				return k.sym
			}
		}
	}
	return snake.NoInput
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	var mx, my int
	var marked bool
	if mp, ok := g.sim.(markerProvider); ok {
		mx, my, marked = mp.Marker()
	}
	g.painter.Blit(screen, g.sim.Cells(), mx, my, marked, g.scale)

	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
