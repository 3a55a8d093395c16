package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"cellsnake/internal/snake"
)

type gameResult struct {
	seed   int64
	length int
	ticks  int
	state  snake.State
}

type summary struct {
	games      int
	byState    map[snake.State]int
	meanLength float64
	meanTicks  float64
	best       gameResult
	median     int
}

func main() {
	games := flag.Int("games", 200, "number of seeded games to play")
	maxTicks := flag.Int("ticks", 5000, "tick limit per game")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	rows := flag.Int("rows", 10, "board rows")
	cols := flag.Int("cols", 30, "board columns")
	seed := flag.Int64("seed", 1, "seed of the first game; game i uses seed+i")
	flag.Parse()

	base := snake.DefaultConfig()
	base.Rows = *rows
	base.Cols = *cols
	if _, err := snake.New(base); err != nil {
		log.Fatalf("invalid board: %v", err)
	}
	n := workerCount(*workers)

	fmt.Printf("Playing %d games on %dx%d (%d workers, %d tick limit)\n", *games, base.Rows, base.Cols, n, *maxTicks)

	jobs := make(chan int64)
	results := make(chan gameResult)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				res, err := playGame(base, s, *maxTicks)
				if err != nil {
					fmt.Printf("seed %d: %v\n", s, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *games; i++ {
			jobs <- *seed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []gameResult
	for res := range results {
		all = append(all, res)
	}
	sum := summarize(all)

	fmt.Printf("\nFinished %d games in %s\n", sum.games, time.Since(start).Round(time.Millisecond))
	for _, st := range []snake.State{snake.Running, snake.GameOver, snake.Full} {
		fmt.Printf("  %-10s %d\n", st, sum.byState[st])
	}
	fmt.Printf("mean length %.2f, median length %d, mean ticks %.1f\n", sum.meanLength, sum.median, sum.meanTicks)
	fmt.Printf("best: seed=%d length=%d ticks=%d state=%s\n", sum.best.seed, sum.best.length, sum.best.ticks, sum.best.state)
}

// workerCount clamps the requested pool size so at least one worker drains
// the job queue.
func workerCount(requested int) int {
	return max(requested, 1)
}

// playGame lets the autopilot play one game until it ends or maxTicks pass.
func playGame(base snake.Config, seed int64, maxTicks int) (gameResult, error) {
	cfg := base
	cfg.Seed = seed
	g, err := snake.New(cfg)
	if err != nil {
		return gameResult{}, err
	}
	for i := 0; i < maxTicks && !g.State().Done(); i++ {
		g.Handle(snake.Autopilot(g))
		g.Tick()
	}
	r := g.Report()
	return gameResult{seed: seed, length: r.Length, ticks: r.Ticks, state: r.State}, nil
}

func summarize(all []gameResult) summary {
	sum := summary{games: len(all), byState: make(map[snake.State]int)}
	if len(all) == 0 {
		return sum
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].length != all[j].length {
			return all[i].length > all[j].length
		}
		return all[i].seed < all[j].seed
	})
	sum.best = all[0]
	sum.median = all[len(all)/2].length

	var lengths, ticks int
	for _, res := range all {
		sum.byState[res.state]++
		lengths += res.length
		ticks += res.ticks
	}
	sum.meanLength = float64(lengths) / float64(len(all))
	sum.meanTicks = float64(ticks) / float64(len(all))
	return sum
}
