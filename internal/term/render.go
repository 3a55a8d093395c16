package term

import (
	"fmt"
	"strings"

	"cellsnake/internal/core"
	"cellsnake/internal/snake"

	"github.com/gdamore/tcell/v2"
)

const (
	glyphBody       = '*'
	glyphBackground = '.'
	glyphApple      = 'o'
)

// Renderer draws the board at the top-left corner of a tcell screen with a
// one-line status below it. It only reads the board.
type Renderer struct {
	screen tcell.Screen

	body       tcell.Style
	background tcell.Style
	apple      tcell.Style
	status     tcell.Style
}

// NewRenderer returns a renderer drawing onto s.
func NewRenderer(s tcell.Screen) *Renderer {
	return &Renderer{
		screen:     s,
		body:       tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		background: tcell.StyleDefault.Foreground(tcell.ColorGray),
		apple:      tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		status:     tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
}

// Draw paints the board, the apple overlay and the status line, then shows
// the frame.
func (r *Renderer) Draw(g *snake.Game) {
	f := g.Field()
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			if snake.Cell(f.Get(row, col)).Active() {
				r.screen.SetContent(col, row, glyphBody, nil, r.body)
				continue
			}
			r.screen.SetContent(col, row, glyphBackground, nil, r.background)
		}
	}
	if at, ok := g.Apple(); ok {
		r.screen.SetContent(at.Col, at.Row, glyphApple, nil, r.apple)
	}
	r.drawText(0, f.Rows, statusLine(g.Parameters()), f.Cols)
	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, text string, width int) {
	if w, _ := r.screen.Size(); w > width {
		width = w
	}
	col := 0
	for _, ch := range text {
		if col >= width {
			return
		}
		r.screen.SetContent(x+col, y, ch, nil, r.status)
		col++
	}
	for ; col < width; col++ {
		r.screen.SetContent(x+col, y, ' ', nil, r.status)
	}
}

func statusLine(snap core.ParameterSnapshot) string {
	length, _ := snap.Lookup("length")
	turn, _ := snap.Lookup("turn")
	state, _ := snap.Lookup("state")
	line := fmt.Sprintf("length %s  turn %s", length, turn)
	if state != "" && state != "running" {
		line += "  [" + strings.ToUpper(state) + "]"
	}
	return line
}
