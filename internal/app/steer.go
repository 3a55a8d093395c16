package app

import "cellsnake/internal/snake"

// queueMovement returns the movement symbol to hold for the next tick.
// Steering is dropped unless the game is running, so keys pressed while
// paused never apply after the pause ends.
func queueMovement(pending, pressed snake.Symbol, state snake.State) snake.Symbol {
	if state != snake.Running {
		return snake.NoInput
	}
	if pending != snake.NoInput {
		return pending
	}
	return pressed
}
