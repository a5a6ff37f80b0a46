package fov

import (
	"math"
	"testing"
)

func TestMetricDistance(t *testing.T) {
	cases := []struct {
		metric Metric
		dx, dy float64
		want   float64
	}{
		{Square, 3, -2, 3},
		{Square, -1, 4, 4},
		{Diamond, 3, -2, 5},
		{Diamond, 0, 0, 0},
		{Circle, 3, 4, 5},
		{Circle, -2, -2, math.Sqrt(8)},
	}
	for _, c := range cases {
		if got := c.metric.Distance(c.dx, c.dy); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%v.Distance(%v,%v) = %v, want %v", c.metric, c.dx, c.dy, got, c.want)
		}
	}
}

func TestMetricAreaMatchesEnumeration(t *testing.T) {
	// Area pre-sizes buffers, so it must be at least the enumerated count
	// and exact for the two integer metrics.
	for _, m := range []Metric{Square, Diamond} {
		for r := 0; r <= 4; r++ {
			n := len(m.PointsInRadius(0, 0, r))
			if got := m.Area(r); got != n {
				t.Errorf("%v.Area(%d) = %d, want %d", m, r, got, n)
			}
		}
	}
	for r := 1; r <= 4; r++ {
		if n := len(Circle.PointsInRadius(0, 0, r)); Circle.Area(r) < n {
			t.Errorf("Circle.Area(%d) = %d underestimates %d cells", r, Circle.Area(r), n)
		}
	}
}

func TestPointsInRadiusClamped(t *testing.T) {
	// A center in the corner of a 4×4 grid keeps only in-bounds cells.
	pts := Square.PointsInRadiusClamped(0, 0, 2, 4, 4)
	if want := 9; len(pts) != want { // 3×3 quadrant
		t.Fatalf("clamped enumeration returned %d cells, want %d", len(pts), want)
	}
	for _, p := range pts {
		if p.X < 0 || p.Y < 0 || p.X >= 4 || p.Y >= 4 {
			t.Errorf("clamped enumeration produced out-of-bounds cell %v", p)
		}
	}
}

func TestPerimeterCellsAreOnRing(t *testing.T) {
	for _, m := range []Metric{Square, Diamond, Circle} {
		ring := m.Perimeter(10, 10, 4)
		seen := make(map[Point]bool)
		for _, p := range ring {
			if seen[p] {
				t.Errorf("%v.Perimeter returned duplicate cell %v", m, p)
			}
			seen[p] = true
			d := m.Distance(float64(p.X-10), float64(p.Y-10))
			// Rounding to cells keeps ring points within half a step of the radius.
			if math.Abs(d-4) > 1 {
				t.Errorf("%v.Perimeter cell %v at distance %v, want ≈4", m, p, d)
			}
		}
		if len(ring) < 8 {
			t.Errorf("%v.Perimeter(r=4) returned only %d cells", m, len(ring))
		}
	}
}

func TestPerimeterZeroRadius(t *testing.T) {
	ring := Circle.Perimeter(3, 3, 0)
	if len(ring) != 1 || ring[0] != (Point{3, 3}) {
		t.Errorf("zero-radius perimeter = %v, want just the center", ring)
	}
}

func TestNudgeToEdge(t *testing.T) {
	// A point one step east of the center lands on the east edge of the ring.
	p := Square.NudgeToEdge(5, 5, 6, 5, 3)
	if p != (Point{8, 5}) {
		t.Errorf("NudgeToEdge east = %v, want {8 5}", p)
	}
	// The center itself cannot pick a direction and stays put.
	if p := Circle.NudgeToEdge(5, 5, 5, 5, 3); p != (Point{5, 5}) {
		t.Errorf("NudgeToEdge from center = %v, want {5 5}", p)
	}
	// Diagonal direction under Chebyshev lands on the ring corner.
	if p := Square.NudgeToEdge(5, 5, 6, 6, 3); p != (Point{8, 8}) {
		t.Errorf("NudgeToEdge diagonal = %v, want {8 8}", p)
	}
}
