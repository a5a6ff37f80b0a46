package fov

// octant transform coefficients.
// One scan routine covers a single 45° wedge; reflecting it through these
// eight sign/axis-swap combinations covers the full circle. A local sweep
// pair (col, row) maps to a world offset via:
//
//	worldX = ox + col*xx + row*xy
//	worldY = oy + col*yx + row*yy
//
// These match the standard RogueBasin recursive shadowcasting multipliers.
type octant struct {
	xx, xy, yx, yy int
}

var octants = [8]octant{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}
