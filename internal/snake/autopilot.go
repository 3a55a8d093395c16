package snake

// Autopilot picks a movement symbol that heads for the apple along the
// shortest wrapped distance while avoiding cells the body still occupies
// next tick. It returns NoInput when the current heading is already best or
// nothing is safe.
func Autopilot(g *Game) Symbol {
	if g.state != Running {
		return NoInput
	}
	rows, cols := g.cfg.Rows, g.cfg.Cols
	s := g.snake
	target, hasTarget := g.apple, g.hasApple

	// Age 1 cells empty before the new head lands, unless the snake grows
	// this tick and every age shifts up first.
	free := 1
	if hasTarget && s.Head == target && s.Length < g.cfg.MaxLength {
		free = 0
	}

	best := s.Direction
	bestScore := -1
	for _, d := range []Direction{s.Direction, Up, Left, Right, Down} {
		if d == s.Direction.Reverse() {
			continue
		}
		next := Step(rows, cols, s.Head, d)
		if Cell(g.field.Get(next.Row, next.Col)).Age() > free {
			continue
		}
		score := rows + cols
		if hasTarget {
			score = torusDistance(rows, cols, next, target)
		}
		if bestScore < 0 || score < bestScore {
			best, bestScore = d, score
		}
	}
	if bestScore < 0 || best == s.Direction {
		return NoInput
	}
	return SymbolFor(best)
}
