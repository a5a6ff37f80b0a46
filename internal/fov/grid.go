package fov

// Grid is a dense row-major scalar field over map cells, indexed [y][x].
// Used both for resistance (0 = transparent, 1 = fully opaque, in between =
// attenuation per cell crossed) and for computed light (0 = unlit, 1 = fully
// lit). Engines clamp writes to [0, 1].
type Grid [][]float64

// NewGrid returns a zeroed width×height grid.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]float64, width)
	}
	return g
}

// Width returns the number of columns. Zero-height grids have width 0.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// InBounds reports whether (x, y) is a valid cell.
func (g Grid) InBounds(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y])
}

// Fill sets every cell to v.
func (g Grid) Fill(v float64) {
	for y := range g {
		for x := range g[y] {
			g[y][x] = v
		}
	}
}

// Reset zeroes every cell. Engines call this before writing a fresh result.
func (g Grid) Reset() { g.Fill(0) }

// Clone returns an independent copy with the same dimensions and values.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y := range g {
		out[y] = make([]float64, len(g[y]))
		copy(out[y], g[y])
	}
	return out
}

// Bitmap is a dense row-major boolean field over map cells, indexed [y][x].
// Used for binary opacity (true = blocking) and for visibility results
// (true = has line of sight).
type Bitmap [][]bool

// NewBitmap returns a cleared width×height bitmap.
func NewBitmap(width, height int) Bitmap {
	b := make(Bitmap, height)
	for y := range b {
		b[y] = make([]bool, width)
	}
	return b
}

// Width returns the number of columns. Zero-height bitmaps have width 0.
func (b Bitmap) Width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Height returns the number of rows.
func (b Bitmap) Height() int { return len(b) }

// InBounds reports whether (x, y) is a valid cell.
func (b Bitmap) InBounds(x, y int) bool {
	return y >= 0 && y < len(b) && x >= 0 && x < len(b[y])
}

// Contains reports whether (x, y) is in bounds and set.
func (b Bitmap) Contains(x, y int) bool {
	return b.InBounds(x, y) && b[y][x]
}

// Set marks (x, y) if it is in bounds.
func (b Bitmap) Set(x, y int) {
	if b.InBounds(x, y) {
		b[y][x] = true
	}
}

// Reset clears every cell.
func (b Bitmap) Reset() {
	for y := range b {
		for x := range b[y] {
			b[y][x] = false
		}
	}
}
