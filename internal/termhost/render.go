package termhost

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/jtestard/pong-duel/pong"
)

// One terminal cell covers this many world units.
const (
	CellWidth  = 10
	CellHeight = 20
)

// WorldSize converts a terminal size in cells to world units.
func WorldSize(cols, rows int) (float32, float32) {
	return float32(cols * CellWidth), float32(rows * CellHeight)
}

// cellRect is an inclusive range of cells.
type cellRect struct {
	x0, y0, x1, y1 int
}

func (r cellRect) empty() bool {
	return r.x0 > r.x1 || r.y0 > r.y1
}

// cellsFor returns the cells covered by b, clipped to the screen. World Y
// grows upwards, screen rows grow downwards.
func cellsFor(b pong.Box, cols, rows int) cellRect {
	w, h := WorldSize(cols, rows)
	lo, hi := b.Min(), b.Max()

	r := cellRect{
		x0: int(math.Floor(float64((lo.X + w/2) / CellWidth))),
		x1: int(math.Ceil(float64((hi.X+w/2)/CellWidth))) - 1,
		y0: int(math.Floor(float64((h/2 - hi.Y) / CellHeight))),
		y1: int(math.Ceil(float64((h/2-lo.Y)/CellHeight))) - 1,
	}
	r.x0 = max(r.x0, 0)
	r.y0 = max(r.y0, 0)
	r.x1 = min(r.x1, cols-1)
	r.y1 = min(r.y1, rows-1)
	return r
}

func fill(s tcell.Screen, r cellRect, style tcell.Style) {
	if r.empty() {
		return
	}
	for y := r.y0; y <= r.y1; y++ {
		for x := r.x0; x <= r.x1; x++ {
			s.SetContent(x, y, '█', nil, style)
		}
	}
}

func faded(c tcell.Color, alpha float32) tcell.Color {
	r, g, b := c.RGB()
	a := pong.Clamp(alpha, 0, 1)
	return tcell.NewRGBColor(int32(float32(r)*a), int32(float32(g)*a), int32(float32(b)*a))
}

func drawText(s tcell.Screen, row int, text string, style tcell.Style) {
	cols, rows := s.Size()
	if row < 0 || row >= rows {
		return
	}
	x := (cols - utf8.RuneCountInString(text)) / 2
	for _, r := range text {
		if x >= 0 && x < cols {
			s.SetContent(x, row, r, nil, style)
		}
		x++
	}
}

// Draw paints the world onto the screen.
func Draw(s tcell.Screen, w *pong.World) {
	cols, rows := s.Size()
	s.Clear()

	paddle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, p := range w.Paddles {
		fill(s, cellsFor(p.Box(), cols, rows), paddle)
	}
	ball := tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 230, 230))
	fill(s, cellsFor(w.Ball.Box(), cols, rows), ball)

	if d := w.Display; d.Alpha > 0 {
		style := tcell.StyleDefault.Foreground(faded(tcell.ColorWhite, d.Alpha)).Bold(true)
		drawText(s, int(d.Top/CellHeight)+1, d.Text, style)
	}

	if w.Intro != nil {
		for _, t := range w.Intro.Texts {
			if t.Alpha <= 0 {
				continue
			}
			style := tcell.StyleDefault.Foreground(faded(tcell.ColorWhite, t.Alpha))
			drawText(s, rows/4+int(t.Top/CellHeight), t.Content, style)
		}
	}

	s.Show()
}
