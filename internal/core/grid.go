package core

import (
	"errors"
	"fmt"
)

// ErrAllocation reports that grid storage could not be obtained.
var ErrAllocation = errors.New("core: cannot allocate field")

// MaxCells bounds the storage a single field may request.
const MaxCells = 1 << 28

// OutOfRangeError describes an access outside the field bounds. Callers
// wrap coordinates before every access, so this only surfaces as a panic value.
type OutOfRangeError struct {
	Row, Col   int
	Rows, Cols int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("core: cell (%d,%d) outside %dx%d field", e.Row, e.Col, e.Rows, e.Cols)
}

// Field stores a toroidal 2D grid of byte-sized cell values in row-major order.
type Field struct {
	Rows, Cols int
	data       []uint8
}

// NewField allocates a field with every cell cleared to zero.
func NewField(rows, cols int) (*Field, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrAllocation, rows, cols)
	}
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrAllocation, rows, cols, MaxCells)
	}
	return &Field{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (f *Field) Cells() []uint8 { return f.data }

// Index returns the linear slice index for (row, col).
func (f *Field) Index(row, col int) int { return row*f.Cols + col }

// Get returns the cell at (row, col). It panics with an OutOfRangeError when
// the coordinates are outside the field.
func (f *Field) Get(row, col int) uint8 {
	f.check(row, col)
	return f.data[f.Index(row, col)]
}

// Set stores v at (row, col). It panics with an OutOfRangeError when the
// coordinates are outside the field.
func (f *Field) Set(row, col int, v uint8) {
	f.check(row, col)
	f.data[f.Index(row, col)] = v
}

func (f *Field) check(row, col int) {
	if row < 0 || row >= f.Rows || col < 0 || col >= f.Cols {
		panic(OutOfRangeError{Row: row, Col: col, Rows: f.Rows, Cols: f.Cols})
	}
}

// Clone returns a deep copy with the same dimensions.
func (f *Field) Clone() *Field {
	g := &Field{Rows: f.Rows, Cols: f.Cols, data: make([]uint8, len(f.data))}
	copy(g.data, f.data)
	return g
}

// CopyFrom overwrites the region both fields share with the cells of other.
func (f *Field) CopyFrom(other *Field) {
	if other == nil {
		return
	}
	rows := min(f.Rows, other.Rows)
	cols := min(f.Cols, other.Cols)
	for r := 0; r < rows; r++ {
		copy(f.data[r*f.Cols:r*f.Cols+cols], other.data[r*other.Cols:r*other.Cols+cols])
	}
}

// Clear fills the field with zeros.
func (f *Field) Clear() {
	for i := range f.data {
		f.data[i] = 0
	}
}
