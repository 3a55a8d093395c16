//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from encoded snake cells.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	Body       color.Color
	Background color.Color
	Marker     color.Color
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{
		w:          w,
		h:          h,
		buf:        make([]byte, 4*w*h),
		Body:       color.RGBA{R: 90, G: 200, B: 90, A: 255},
		Background: color.RGBA{R: 16, G: 16, B: 20, A: 255},
		Marker:     color.RGBA{R: 230, G: 60, B: 50, A: 255},
	}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads cells plus an optional marker cell and draws them scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, mx, my int, marked bool, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillSnakeRGBA(gp.buf, cells, gp.Body, gp.Background)
	if marked {
		markCell(gp.buf, gp.w, mx, my, gp.Marker)
	}
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
