package gamemap

// Sample maps for the demo and tests. Symbols: '#' wall, '█' fully
// blocking, '+' closed door, '/' open door, box glyphs thin wall segments,
// anything else floor.

// Outpost is a small station level with rooms, doors, and pillars.
var Outpost = []string{
	"###############################################",
	"#.............#...............#...............#",
	"#.............#...............#...............#",
	"#.....█.......+......█......../......█........#",
	"#.............#...............#...............#",
	"#......####+###...............#####/###.......#",
	"#......#......#...............#.......#.......#",
	"#......#......#......█.█......#.......#.......#",
	"#......#......+................/......#.......#",
	"#......#......#......█.█......#.......#.......#",
	"#......########...............#########.......#",
	"#.............#...............#...............#",
	"#.............#......███......#...............#",
	"#.............+......█.█......+...............#",
	"#.............#......███......#...............#",
	"#.............#...............#...............#",
	"###############################################",
}

// ThinWalls exercises the 3×-subdivision build: rooms drawn with
// box-drawing segments instead of full-cell walls.
var ThinWalls = []string{
	"┌─────────┬─────────┐",
	"│.........│.........│",
	"│.........│.........│",
	"│....┌────┘....█....│",
	"│....│..............│",
	"│....│....┌───┐.....│",
	"├────┘....│...│.....│",
	"│.........└───┼─────┤",
	"│.............│.....│",
	"│......█......│.....│",
	"└─────────────┴─────┘",
}

// Arena is an open field with scattered pillars, good for watching cones
// and bouncing rays.
var Arena = []string{
	"#########################",
	"#.......................#",
	"#...█........█..........#",
	"#.......................#",
	"#.......................#",
	"#........█.....█........#",
	"#.......................#",
	"#...█...................#",
	"#............█......█...#",
	"#.......................#",
	"#.......................#",
	"#########################",
}

// Samples maps demo map names to their rows.
var Samples = map[string][]string{
	"outpost": Outpost,
	"thin":    ThinWalls,
	"arena":   Arena,
}
