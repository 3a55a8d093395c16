package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cellsnake/internal/app"
	"cellsnake/internal/audio"
	"cellsnake/internal/snake"
	"cellsnake/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game, err := snake.New(snake.FromMap(cfg.SimConfig()))
	if err != nil {
		log.Fatalf("start game: %v", err)
	}

	cues := audio.New()
	if cfg.Sound {
		if err := cues.Initialize(); err != nil {
			// Non-fatal, the game runs without sound.
			log.Printf("audio disabled: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	screen.HideCursor()
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	in := term.NewInput(screen)
	report := term.Run(ctx, game, in, term.NewRenderer(screen), term.Options{
		TPS:       cfg.TPS,
		Autopilot: cfg.Autopilot,
		Cues:      cues,
	})
	stop()
	in.Close()
	screen.Fini()
	cues.Close()

	fmt.Println(report)
}
