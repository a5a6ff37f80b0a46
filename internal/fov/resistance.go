package fov

// Resistance builders: symbolic tile grids (one rune per cell) become the
// numeric grids the engines consume. Recognized symbols:
//
//	#            generic wall
//	█ and the box-drawing segments ─│┌┐└┘├┤┬┴┼   fully blocking
//	/            open door
//	+            closed door
//	anything else is transparent
//
// The sight and sound tables differ: walls attenuate sound far less than
// they block light, and doors leak sound.

// Sight resistance constants.
const (
	resWall       = 1.0
	resDoorOpen   = 0.15
	resDoorClosed = 0.95
)

// Sound resistance constants.
const (
	soundBlocking   = 1.0
	soundWall       = 0.55
	soundDoorOpen   = 0.05
	soundDoorClosed = 0.30
)

// segmentMasks maps wall-segment glyphs to the sub-cells their line
// segments cover on a 3×3 subdivision, as a bitmask over index suby*3+subx.
// The center sub-cell (bit 4) is part of every segment.
var segmentMasks = map[rune]uint16{
	'─': 1<<3 | 1<<4 | 1<<5,
	'│': 1<<1 | 1<<4 | 1<<7,
	'┌': 1<<4 | 1<<5 | 1<<7,
	'┐': 1<<3 | 1<<4 | 1<<7,
	'└': 1<<1 | 1<<4 | 1<<5,
	'┘': 1<<1 | 1<<3 | 1<<4,
	'├': 1<<1 | 1<<4 | 1<<5 | 1<<7,
	'┤': 1<<1 | 1<<3 | 1<<4 | 1<<7,
	'┬': 1<<3 | 1<<4 | 1<<5 | 1<<7,
	'┴': 1<<1 | 1<<3 | 1<<4 | 1<<5,
	'┼': 1<<1 | 1<<3 | 1<<4 | 1<<5 | 1<<7,
}

func isSegment(r rune) bool {
	_, ok := segmentMasks[r]
	return ok
}

func isBlocking(r rune) bool {
	return r == '█' || isSegment(r)
}

// cellResistance returns the sight resistance of a tile symbol.
func cellResistance(r rune) float64 {
	switch {
	case r == '#' || isBlocking(r):
		return resWall
	case r == '+':
		return resDoorClosed
	case r == '/':
		return resDoorOpen
	default:
		return 0
	}
}

// cellSoundResistance returns the sound resistance of a tile symbol.
func cellSoundResistance(r rune) float64 {
	switch {
	case isBlocking(r):
		return soundBlocking
	case r == '#':
		return soundWall
	case r == '+':
		return soundDoorClosed
	case r == '/':
		return soundDoorOpen
	default:
		return 0
	}
}

// BuildResistance converts a symbolic grid into a sight resistance grid.
func BuildResistance(cells [][]rune) Grid {
	return buildGrid(cells, cellResistance)
}

// BuildSoundResistance converts a symbolic grid into a sound resistance
// grid using the softer sound constants.
func BuildSoundResistance(cells [][]rune) Grid {
	return buildGrid(cells, cellSoundResistance)
}

// BuildOpacity collapses a symbolic grid to blocked/unblocked with no
// partial transparency: anything whose sight resistance reaches 1.0 blocks.
// Suited to unbounded-radius line-of-sight queries.
func BuildOpacity(cells [][]rune) Bitmap {
	out := NewBitmap(gridWidth(cells), len(cells))
	for y, row := range cells {
		for x, r := range row {
			out[y][x] = cellResistance(r) >= 1
		}
	}
	return out
}

// BuildResistance3x builds a sight resistance grid subdivided 3× in both
// axes. Wall-segment glyphs mark only the sub-cells their line segments
// cover, giving sub-cell-accurate occlusion; every other symbol fills its
// whole 3×3 block with its usual resistance.
func BuildResistance3x(cells [][]rune) Grid {
	return buildGrid3x(cells, cellResistance)
}

// BuildSoundResistance3x is BuildResistance3x with the sound constants.
func BuildSoundResistance3x(cells [][]rune) Grid {
	return buildGrid3x(cells, cellSoundResistance)
}

func buildGrid(cells [][]rune, resistance func(rune) float64) Grid {
	out := NewGrid(gridWidth(cells), len(cells))
	for y, row := range cells {
		for x, r := range row {
			out[y][x] = resistance(r)
		}
	}
	return out
}

func buildGrid3x(cells [][]rune, resistance func(rune) float64) Grid {
	out := NewGrid(gridWidth(cells)*3, len(cells)*3)
	for y, row := range cells {
		for x, r := range row {
			mask, segment := segmentMasks[r]
			if !segment {
				mask = 0x1ff // full block
			}
			v := resistance(r)
			for sub := 0; sub < 9; sub++ {
				if mask&(1<<sub) != 0 {
					out[y*3+sub/3][x*3+sub%3] = v
				}
			}
		}
	}
	return out
}

// gridWidth returns the widest row; short rows leave trailing transparent
// cells rather than erroring.
func gridWidth(cells [][]rune) int {
	w := 0
	for _, row := range cells {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}
