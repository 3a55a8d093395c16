package snake

const (
	ageMask  = 0x3f
	dirShift = 6
	dirMask  = 0xc0

	// MaxAge is the largest age a cell can hold, and so the longest snake.
	MaxAge = ageMask
)

// Cell packs a body segment into one byte: the top two bits hold the
// direction the segment was heading when it was the head, the low six bits
// the number of ticks until it vanishes. Age 0 is an empty cell and its
// direction bits carry no meaning.
type Cell uint8

// Pack encodes direction and age. Ages outside [0, MaxAge] are truncated.
func Pack(d Direction, age int) Cell {
	return Cell(uint8(d&0x03)<<dirShift | uint8(age)&ageMask)
}

// Unpack splits the cell into direction and age.
func (c Cell) Unpack() (Direction, int) {
	return c.Direction(), c.Age()
}

// Direction returns the stored heading.
func (c Cell) Direction() Direction { return Direction((c & dirMask) >> dirShift) }

// Age returns the remaining ticks before the cell empties.
func (c Cell) Age() int { return int(c & ageMask) }

// Active reports whether the cell holds part of the snake.
func (c Cell) Active() bool { return c&ageMask != 0 }
