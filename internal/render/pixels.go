package render

import (
	"image/color"

	"cellsnake/internal/snake"
)

// fillSnakeRGBA converts encoded snake cells into RGBA pixels in buf. Only the
// age bits decide whether a cell is drawn; direction bits are ignored.
func fillSnakeRGBA(buf []byte, cells []uint8, body, background color.Color) {
	for i, c := range cells {
		if snake.Cell(c).Active() {
			setPixel(buf, i, body)
			continue
		}
		setPixel(buf, i, background)
	}
}

// markCell paints a single overlay pixel at (x, y) of a w-wide image.
func markCell(buf []byte, w, x, y int, col color.Color) {
	idx := y*w + x
	if x < 0 || x >= w || idx < 0 || idx*4+3 >= len(buf) {
		return
	}
	setPixel(buf, idx, col)
}

func setPixel(buf []byte, idx int, col color.Color) {
	r, g, b, a := col.RGBA()
	base := idx * 4
	buf[base+0] = uint8(r >> 8)
	buf[base+1] = uint8(g >> 8)
	buf[base+2] = uint8(b >> 8)
	buf[base+3] = uint8(a >> 8)
}
