package render

import "github.com/gdamore/tcell/v2"

// DrawMenu draws a titled list with the selected row highlighted.
func (r *Renderer) DrawMenu(title string, rows []string, selected int) {
	r.screen.Clear()
	_, h := r.screen.Size()
	r.drawText(2, 1, title, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	visible := max(h-5, 1)
	first := 0
	if selected >= visible {
		first = selected - visible + 1
	}
	for i := first; i < len(rows) && i-first < visible; i++ {
		style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
		prefix := "  "
		if i == selected {
			style = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
			prefix = "> "
		}
		r.drawText(2, 3+i-first, prefix+rows[i], style)
	}
	r.drawText(2, h-1, "[enter] choose  [esc] back", tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}
