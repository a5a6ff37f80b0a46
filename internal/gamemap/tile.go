package gamemap

import "strings"

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
	TileWallSegment // box-drawing wall piece, sub-cell accurate in the 3× build
	TileDoorOpen
	TileDoorClosed
	TileBlocking // fully blocking even for sound
)

// segmentRunes are the box-drawing glyphs recognized as wall segments.
const segmentRunes = "─│┌┐└┘├┤┬┴┼"

// Tile holds one map cell: its symbol, derived kind, and the explored flag
// the demo uses for map memory.
type Tile struct {
	Rune     rune
	Kind     TileKind
	Walkable bool
	Explored bool
}

// makeTile derives a tile from its map symbol.
func makeTile(r rune) Tile {
	switch {
	case r == '#':
		return Tile{Rune: r, Kind: TileWall}
	case r == '█':
		return Tile{Rune: r, Kind: TileBlocking}
	case r == '+':
		return Tile{Rune: r, Kind: TileDoorClosed, Walkable: true}
	case r == '/':
		return Tile{Rune: r, Kind: TileDoorOpen, Walkable: true}
	case strings.ContainsRune(segmentRunes, r):
		return Tile{Rune: r, Kind: TileWallSegment}
	default:
		return Tile{Rune: r, Kind: TileFloor, Walkable: true}
	}
}
