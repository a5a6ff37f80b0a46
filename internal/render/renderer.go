package render

import (
	"gridlight/internal/fov"
	"gridlight/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// hudRows is the screen space reserved under the map view.
const hudRows = 4

// Renderer draws a tile map shaded by a light map onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-hudRows),
	}
}

// CenterOn recenters the camera on map position (x, y).
func (r *Renderer) CenterOn(x, y int) {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = h - hudRows
	r.camera.Center(x, y)
}

// DrawFrame renders the shaded map and the origin marker. Lit cells are
// marked explored as a side effect, so previously seen terrain stays dimly
// on screen after the light moves away.
func (r *Renderer) DrawFrame(m *gamemap.TileMap, light fov.Grid, ox, oy int) {
	r.screen.Clear()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			sx, sy, onScreen := r.camera.MapToScreen(x, y)
			if !onScreen {
				continue
			}
			tile := m.At(x, y)
			v := 0.0
			if light.InBounds(x, y) {
				v = light[y][x]
			}
			if v > 0 {
				tile.Explored = true
				r.screen.SetContent(sx, sy, glyphFor(tile), nil, litStyle(tile, v))
			} else if tile.Explored {
				r.screen.SetContent(sx, sy, glyphFor(tile), nil, exploredStyle)
			}
		}
	}
	if sx, sy, onScreen := r.camera.MapToScreen(ox, oy); onScreen {
		r.screen.SetContent(sx, sy, '@', nil, originStyle)
	}
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// glyphFor picks the drawn rune: floors render as a mid dot so their shade
// reads clearly, everything else keeps its map symbol.
func glyphFor(t *gamemap.Tile) rune {
	if t.Kind == gamemap.TileFloor {
		return '·'
	}
	return t.Rune
}
