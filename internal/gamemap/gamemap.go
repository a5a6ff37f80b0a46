package gamemap

// TileMap holds the symbolic tile grid for one map.
type TileMap struct {
	Width, Height int
	Tiles         [][]Tile
}

// Parse builds a TileMap from one string per row. Short rows are padded
// with floor so the grid stays rectangular.
func Parse(rows []string) *TileMap {
	width := 0
	runeRows := make([][]rune, len(rows))
	for i, row := range rows {
		runeRows[i] = []rune(row)
		if len(runeRows[i]) > width {
			width = len(runeRows[i])
		}
	}

	tiles := make([][]Tile, len(rows))
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			r := ' '
			if x < len(runeRows[y]) {
				r = runeRows[y][x]
			}
			tiles[y][x] = makeTile(r)
		}
	}
	return &TileMap{Width: width, Height: len(rows), Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *TileMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *TileMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// Runes returns the symbolic grid for the resistance builders.
func (m *TileMap) Runes() [][]rune {
	out := make([][]rune, m.Height)
	for y := range out {
		out[y] = make([]rune, m.Width)
		for x := range out[y] {
			out[y][x] = m.Tiles[y][x].Rune
		}
	}
	return out
}

// ClearExplored resets the demo's map memory.
func (m *TileMap) ClearExplored() {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x].Explored = false
		}
	}
}
