package fov

// Symmetry repair. Per-octant shadowcasting computes slope bounds from the
// origin only, so near diagonal occluders it can light a cell B that could
// not itself see the origin. The corrected variant re-checks the suspect
// positions — the diagonals and the outer-ring cells one step off each
// diagonal, enumerated per distance — with a reverse single-target scan and
// darkens any cell that fails it.
//
// Postcondition for the corrected variant: visible(A, B) == visible(B, A)
// for the repaired positions. Whether the enumerated offsets cover every
// asymmetric pair on arbitrary layouts is not established; this is a
// targeted repair pass, not a proof.

// ComputeLightSymmetric is ComputeLight followed by the diagonal symmetry
// repair pass.
func ComputeLightSymmetric(res, out Grid, ox, oy int, radius float64, metric Metric) Grid {
	ComputeLight(res, out, ox, oy, radius, metric)
	repairSymmetry(res, out, ox, oy, int(radius))
	return out
}

// repairSymmetry darkens lit cells at the suspect diagonal offsets that
// cannot see the origin back.
func repairSymmetry(res, out Grid, ox, oy, radius int) {
	for d := 1; d <= radius; d++ {
		for _, off := range diagonalRing(d) {
			bx, by := ox+off.X, oy+off.Y
			if !out.InBounds(bx, by) || out[by][bx] <= 0 {
				continue
			}
			if !CanSee(res, bx, by, ox, oy) {
				out[by][bx] = 0
			}
		}
	}
}

// diagonalRing returns the four diagonal offsets at Chebyshev distance d
// plus the outer-ring positions one diagonal step to either side of each.
func diagonalRing(d int) []Point {
	pts := make([]Point, 0, 12)
	for _, sx := range [2]int{-1, 1} {
		for _, sy := range [2]int{-1, 1} {
			pts = append(pts, Point{sx * d, sy * d})
			if d > 1 {
				pts = append(pts, Point{sx * (d - 1), sy * d}, Point{sx * d, sy * (d - 1)})
			}
		}
	}
	return pts
}
