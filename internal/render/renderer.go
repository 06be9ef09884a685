// Package render draws the idle hunt screens onto a tcell screen: the status
// HUD, selection menus and the offline progress report.
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws onto one tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Screen returns the underlying screen.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y) and
// returns its width in columns.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) int {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return 0
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	w := runewidth.StringWidth(glyph)
	if w == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
	return max(w, 1)
}

// drawText draws text from column x, clipped to the screen width, and
// returns the column after the last cell drawn. Wide runes take two cells.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if col+cw > w {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		if cw == 2 {
			r.screen.SetContent(col+1, y, ' ', nil, style)
		}
		col += cw
	}
	return col
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawCentered draws text centred on row y.
func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := max((w-runewidth.StringWidth(text))/2, 0)
	r.drawText(x, y, text, style)
}

// bar renders a fixed-width gauge such as [######----].
func bar(cur, maxV float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if maxV > 0 {
		filled = int(cur / maxV * float64(width))
	}
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// Truncate clips s to width columns, adding an ellipsis when it was cut.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
