package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status line and key help under the map view.
func (r *Renderer) DrawHUD(status string, help []string) {
	w, h := r.screen.Size()
	hudY := h - hudRows

	// Separator line.
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, hudY, '─', nil, hudLineStyle)
	}

	r.drawText(0, hudY+1, runewidth.Truncate(status, w, "…"), hudStyle)
	for i, line := range help {
		if i >= hudRows-2 {
			break
		}
		r.drawText(0, hudY+2+i, runewidth.Truncate(line, w, "…"), hudDimStyle)
	}
}

// drawText writes a string left to right, advancing by display width so
// wide runes stay aligned.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
