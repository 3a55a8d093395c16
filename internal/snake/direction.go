package snake

// Direction is one of the four headings. The numbering makes the reverse of
// d equal to ^d & 3.
type Direction uint8

const (
	Up Direction = iota
	Left
	Right
	Down
)

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction { return ^d & 0x03 }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "invalid"
	}
}

// Coord addresses a cell on the board.
type Coord struct {
	Row, Col int
}

// Step returns the neighbour of at in direction d on a rows x cols torus.
func Step(rows, cols int, at Coord, d Direction) Coord {
	switch d {
	case Up:
		if at.Row--; at.Row < 0 {
			at.Row = rows - 1
		}
	case Down:
		if at.Row++; at.Row >= rows {
			at.Row = 0
		}
	case Left:
		if at.Col--; at.Col < 0 {
			at.Col = cols - 1
		}
	case Right:
		if at.Col++; at.Col >= cols {
			at.Col = 0
		}
	}
	return at
}

// torusDistance is the Manhattan distance between a and b when both axes wrap.
func torusDistance(rows, cols int, a, b Coord) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	if dr > rows/2 {
		dr = rows - dr
	}
	if dc > cols/2 {
		dc = cols - dc
	}
	return dr + dc
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
