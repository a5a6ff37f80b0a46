package render

import (
	"gridlight/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

var (
	exploredStyle = tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(70, 70, 90)).
			Background(tcell.ColorBlack)
	originStyle = tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Background(tcell.ColorBlack).
			Bold(true)
	hudStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	hudDimStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	hudLineStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// litStyle shades a tile by its brightness. Walls lean warm so lit
// structure stands out from lit floor.
func litStyle(t *gamemap.Tile, v float64) tcell.Style {
	if v > 1 {
		v = 1
	}
	base := 40 + int32(215*v)
	fg := tcell.NewRGBColor(base, base, base-20)
	switch t.Kind {
	case gamemap.TileWall, gamemap.TileWallSegment, gamemap.TileBlocking:
		fg = tcell.NewRGBColor(base, base-int32(30*v), base-int32(60*v))
	case gamemap.TileDoorOpen, gamemap.TileDoorClosed:
		fg = tcell.NewRGBColor(base, base-int32(10*v), base-int32(40*v))
	}
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
}
