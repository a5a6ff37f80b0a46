package fov

// Opacity is the blocking view of a map accepted by the line-of-sight
// engine: either a full ResistanceGrid (blocking at resistance ≥ 1) or a
// binary opacity Bitmap.
type Opacity interface {
	Width() int
	Height() int
	InBounds(x, y int) bool
	BlockedAt(x, y int) bool
}

// BlockedAt reports whether the cell fully blocks sight (resistance ≥ 1).
// Out-of-bounds cells block.
func (g Grid) BlockedAt(x, y int) bool {
	return !g.InBounds(x, y) || g[y][x] >= 1
}

// BlockedAt reports whether the cell is marked blocking. Out-of-bounds
// cells block.
func (b Bitmap) BlockedAt(x, y int) bool {
	return !b.InBounds(x, y) || b[y][x]
}

// losScan is the boolean specialization of the shadowcasting skeleton:
// no radius, no falloff, a cell is visible the moment the scan reaches it.
// Opaque cells are themselves marked visible; only cells behind them are
// excluded.
type losScan struct {
	op     Opacity
	out    Bitmap // nil for single-target queries
	ox, oy int

	minX, minY, maxX, maxY int // inclusive scan window

	target bool
	tx, ty int
	found  bool
}

// ComputeLOS overwrites out with the cells visible from (ox, oy), with no
// distance limit. The opaque map may be a ResistanceGrid or an opacity
// Bitmap. out must match op's dimensions; the filled out is returned.
func ComputeLOS(op Opacity, out Bitmap, ox, oy int) Bitmap {
	return ComputeLOSBounded(op, out, ox, oy, 0, 0, op.Width()-1, op.Height()-1)
}

// ComputeLOSBounded is ComputeLOS restricted to the inclusive sub-rectangle
// (minX, minY)–(maxX, maxY). Cells outside the window are skipped exactly
// like out-of-grid cells; the recursion shape is unchanged.
func ComputeLOSBounded(op Opacity, out Bitmap, ox, oy, minX, minY, maxX, maxY int) Bitmap {
	out.Reset()
	s := &losScan{op: op, out: out, ox: ox, oy: oy, minX: minX, minY: minY, maxX: maxX, maxY: maxY}
	s.run()
	return out
}

// CanSee reports whether (tx, ty) is visible from (ox, oy). It runs the
// same scan as ComputeLOS but returns the moment the target cell is
// reached, without materializing a visibility map.
func CanSee(op Opacity, ox, oy, tx, ty int) bool {
	if ox == tx && oy == ty {
		return op.InBounds(ox, oy)
	}
	s := &losScan{
		op: op, ox: ox, oy: oy,
		maxX: op.Width() - 1, maxY: op.Height() - 1,
		target: true, tx: tx, ty: ty,
	}
	s.run()
	return s.found
}

func (s *losScan) run() {
	if !s.inWindow(s.ox, s.oy) {
		return
	}
	s.mark(s.ox, s.oy)
	// Rows past the window's span can hold no in-window cell.
	maxRow := (s.maxX - s.minX) + (s.maxY - s.minY) + 1
	for _, o := range octants {
		s.castOctant(1, 1.0, 0.0, maxRow, o)
		if s.found {
			return
		}
	}
}

func (s *losScan) inWindow(x, y int) bool {
	return s.op.InBounds(x, y) && x >= s.minX && x <= s.maxX && y >= s.minY && y <= s.maxY
}

func (s *losScan) mark(x, y int) {
	if s.out != nil {
		s.out.Set(x, y)
	}
	if s.target && x == s.tx && y == s.ty {
		s.found = true
	}
}

func (s *losScan) castOctant(row int, start, end float64, maxRow int, o octant) {
	if start < end {
		return
	}
	newStart := start
	blocked := false
	for dist := row; dist <= maxRow && !blocked; dist++ {
		dy := -dist
		for dx := -dist; dx <= 0; dx++ {
			wx := s.ox + dx*o.xx + dy*o.xy
			wy := s.oy + dx*o.yx + dy*o.yy

			leftSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rightSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if !s.inWindow(wx, wy) || start < rightSlope {
				continue
			}
			if end > leftSlope {
				break
			}

			s.mark(wx, wy)
			if s.found {
				return
			}

			opaque := s.op.BlockedAt(wx, wy)
			if blocked {
				if opaque {
					newStart = rightSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque {
				blocked = true
				s.castOctant(dist+1, start, leftSlope, maxRow, o)
				if s.found {
					return
				}
				newStart = rightSlope
			}
		}
	}
}
