//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"cellsnake/internal/app"
	"cellsnake/internal/core"
	"cellsnake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatalf("start %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("cellsnake — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+180, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	if g, ok := sim.(*snake.Game); ok {
		fmt.Println(g.Report())
	}
}
