package fov

import "math"

// Metric selects how cell offsets map to scalar distance. It shapes the
// lit region: Square gives square fields, Diamond gives diamonds, Circle
// gives circles.
type Metric uint8

const (
	// Square is the Chebyshev metric: max(|dx|, |dy|).
	Square Metric = iota
	// Diamond is the Manhattan metric: |dx| + |dy|.
	Diamond
	// Circle is the Euclidean metric: sqrt(dx² + dy²).
	Circle
)

// String returns the metric's name for HUD and log output.
func (m Metric) String() string {
	switch m {
	case Square:
		return "square"
	case Diamond:
		return "diamond"
	default:
		return "circle"
	}
}

// Distance returns the scalar distance of the offset (dx, dy) under m.
func (m Metric) Distance(dx, dy float64) float64 {
	dx = math.Abs(dx)
	dy = math.Abs(dy)
	switch m {
	case Square:
		return math.Max(dx, dy)
	case Diamond:
		return dx + dy
	default:
		return math.Sqrt(dx*dx + dy*dy)
	}
}

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Area returns the number of cells within radius r of a center, ignoring
// grid edges. Useful for pre-sizing buffers before enumerating.
func (m Metric) Area(r int) int {
	if r < 0 {
		return 1
	}
	switch m {
	case Square:
		return (2*r + 1) * (2*r + 1)
	case Diamond:
		return 2*r*(r+1) + 1
	default:
		return int(math.Ceil(math.Pi*float64(r)*float64(r))) + 3
	}
}

// PointsInRadius returns every cell whose distance from (cx, cy) is at most
// r, in unspecified order, without any grid clamping.
func (m Metric) PointsInRadius(cx, cy, r int) []Point {
	return m.pointsInRadius(cx, cy, r, false, 0, 0)
}

// PointsInRadiusClamped is PointsInRadius restricted to cells inside a
// width×height grid.
func (m Metric) PointsInRadiusClamped(cx, cy, r, width, height int) []Point {
	return m.pointsInRadius(cx, cy, r, true, width, height)
}

func (m Metric) pointsInRadius(cx, cy, r int, clamp bool, width, height int) []Point {
	if r < 0 {
		r = 0
	}
	pts := make([]Point, 0, m.Area(r))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if m.Distance(float64(dx), float64(dy)) > float64(r) {
				continue
			}
			x, y := cx+dx, cy+dy
			if clamp && (x < 0 || y < 0 || x >= width || y >= height) {
				continue
			}
			pts = append(pts, Point{x, y})
		}
	}
	return pts
}

// Perimeter returns the cells lying on the ring at exactly radius r around
// (cx, cy), traced by swept angle. The sweep starts at one subdivision per
// half-turn and doubles the angular resolution until a complete pass adds
// no new cell, deduplicating through a membership set. Order follows first
// discovery, not angle.
func (m Metric) Perimeter(cx, cy, r int) []Point {
	if r <= 0 {
		return []Point{{cx, cy}}
	}
	seen := make(map[Point]bool)
	var ring []Point
	for step := 1; ; step *= 2 {
		added := false
		n := 2 * step // subdivisions per half-turn, over the full turn
		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			p := m.onRing(cx, cy, float64(r), math.Cos(theta), math.Sin(theta))
			if !seen[p] {
				seen[p] = true
				ring = append(ring, p)
				added = true
			}
		}
		if !added {
			return ring
		}
	}
}

// NudgeToEdge moves (x, y) outward from (cx, cy) onto the ring at radius r,
// along the direction from the center through the point. Points already at
// or beyond the ring project onto it. Used for directional effects such as
// knockback destinations.
func (m Metric) NudgeToEdge(cx, cy, x, y, r int) Point {
	dx, dy := float64(x-cx), float64(y-cy)
	if dx == 0 && dy == 0 {
		return Point{cx, cy}
	}
	return m.onRing(cx, cy, float64(r), dx, dy)
}

// onRing scales the direction (dx, dy) so its metric norm equals r and
// returns the resulting cell.
func (m Metric) onRing(cx, cy int, r, dx, dy float64) Point {
	norm := m.Distance(dx, dy)
	if norm == 0 {
		return Point{cx, cy}
	}
	scale := r / norm
	return Point{cx + int(math.Round(dx*scale)), cy + int(math.Round(dy*scale))}
}
