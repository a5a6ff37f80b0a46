package fov

import (
	"math"
	"testing"
)

// openResistance returns a fully transparent width×height resistance grid.
func openResistance(width, height int) Grid {
	return NewGrid(width, height)
}

func TestComputeLightOpenGridFalloff(t *testing.T) {
	// On an all-permissive grid every in-radius cell gets exactly the
	// linear falloff 1 − d/radius, and cells beyond the radius stay dark.
	for _, m := range []Metric{Square, Diamond, Circle} {
		res := openResistance(21, 21)
		out := NewGrid(21, 21)
		ComputeLight(res, out, 10, 10, 6, m)

		for y := 0; y < 21; y++ {
			for x := 0; x < 21; x++ {
				d := m.Distance(float64(x-10), float64(y-10))
				want := 0.0
				if d <= 6 {
					want = 1 - d/6
				}
				if math.Abs(out[y][x]-want) > 1e-9 {
					t.Fatalf("%v metric: light[%d][%d] = %v, want %v (d=%v)", m, y, x, out[y][x], want, d)
				}
			}
		}
	}
}

func TestComputeLightMonotonicDecay(t *testing.T) {
	// Brightness never increases with distance from the origin.
	res := openResistance(15, 15)
	out := NewGrid(15, 15)
	ComputeLight(res, out, 7, 7, 5, Circle)

	for step := 1; step < 7; step++ {
		closer := out[7][7+step-1]
		farther := out[7][7+step]
		if farther > closer {
			t.Errorf("light grew with distance: %v at step %d, %v at step %d", closer, step-1, farther, step)
		}
	}
}

func TestComputeLightOriginBrightness(t *testing.T) {
	res := openResistance(9, 9)
	out := NewGrid(9, 9)

	ComputeLight(res, out, 4, 4, 10, Circle)
	if out[4][4] != 1.0 {
		t.Errorf("origin light = %v, want 1.0", out[4][4])
	}

	// Sub-cell radii light the origin with the radius itself, never more.
	ComputeLight(res, out, 4, 4, 0.5, Circle)
	if out[4][4] != 0.5 {
		t.Errorf("origin light with radius 0.5 = %v, want 0.5", out[4][4])
	}
}

func TestComputeLightZeroRadiusOnlyOrigin(t *testing.T) {
	res := openResistance(9, 9)
	out := NewGrid(9, 9)
	ComputeLight(res, out, 4, 4, 0, Circle)

	for y := range out {
		for x := range out[y] {
			if (x != 4 || y != 4) && out[y][x] != 0 {
				t.Fatalf("cell (%d,%d) lit with zero radius", x, y)
			}
		}
	}
}

func TestComputeLightScenarioOpenFiveByFive(t *testing.T) {
	// 5×5 all-open grid, origin (2,2), radius 10, circle metric.
	res := openResistance(5, 5)
	out := NewGrid(5, 5)
	ComputeLight(res, out, 2, 2, 10, Circle)

	if out[2][2] != 1.0 {
		t.Errorf("light[2][2] = %v, want 1.0", out[2][2])
	}
	if want := 1 - math.Sqrt(8)/10; math.Abs(out[0][0]-want) > 1e-9 {
		t.Errorf("light[0][0] = %v, want %v", out[0][0], want)
	}
	if want := 1 - 2.0/10; math.Abs(out[2][4]-want) > 1e-9 {
		t.Errorf("light at (4,2) = %v, want %v", out[2][4], want)
	}
}

func TestComputeLightScenarioBlockedCell(t *testing.T) {
	// Same grid with an opaque cell at (3,2): the cell behind it along the
	// row is fully shadowed, the blocker itself still receives light, and
	// the origin is unaffected.
	res := openResistance(5, 5)
	res[2][3] = 1.0
	out := NewGrid(5, 5)
	ComputeLight(res, out, 2, 2, 10, Circle)

	if out[2][4] != 0 {
		t.Errorf("light at (4,2) behind the blocker = %v, want 0", out[2][4])
	}
	if out[2][3] <= 0 {
		t.Errorf("the blocking cell itself should be lit, got %v", out[2][3])
	}
	if out[2][2] != 1.0 {
		t.Errorf("origin light = %v, want 1.0", out[2][2])
	}
}

func TestComputeLightIdempotent(t *testing.T) {
	// Identical inputs into fresh buffers produce bit-identical maps.
	res := openResistance(12, 12)
	res[5][7] = 1.0
	res[8][3] = 0.4
	a := ComputeLight(res, NewGrid(12, 12), 6, 6, 5, Circle)
	b := ComputeLight(res, NewGrid(12, 12), 6, 6, 5, Circle)

	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				t.Fatalf("results differ at (%d,%d): %v vs %v", x, y, a[y][x], b[y][x])
			}
		}
	}
}

func TestComputeLightAngledConeAheadAndBehind(t *testing.T) {
	// A 90° cone facing east lights cells ahead and leaves cells directly
	// behind dark regardless of distance.
	res := openResistance(21, 21)
	out := NewGrid(21, 21)
	ComputeLightAngled(res, out, 10, 10, 8, Circle, 0, 90)

	for step := 1; step <= 5; step++ {
		if out[10][10+step] <= 0 {
			t.Errorf("cell %d ahead should be lit", step)
		}
		if out[10][10-step] != 0 {
			t.Errorf("cell %d behind should be dark, got %v", step, out[10][10-step])
		}
	}
	// Perpendicular directions fall outside a 90° cone too.
	if out[10+5][10] != 0 {
		t.Errorf("cell 5 south of origin should be outside the cone")
	}
}

func TestComputeLightAngledWrapAround(t *testing.T) {
	// A cone facing west (180°) straddles the angle seam; both sides of it
	// must light symmetrically.
	res := openResistance(21, 21)
	out := NewGrid(21, 21)
	ComputeLightAngled(res, out, 10, 10, 8, Circle, 180, 90)

	if out[10][10-4] <= 0 {
		t.Errorf("cell ahead (west) should be lit")
	}
	if out[10-1][10-4] <= 0 || out[10+1][10-4] <= 0 {
		t.Errorf("cells straddling the seam should both be lit: %v and %v",
			out[10-1][10-4], out[10+1][10-4])
	}
	if out[10][10+4] != 0 {
		t.Errorf("cell behind (east) should be dark, got %v", out[10][10+4])
	}
}

func TestComputeLightDirectionalReach(t *testing.T) {
	// Facing east with a long forward radius and a short back radius:
	// distance 5 is within forward reach but beyond back reach.
	res := openResistance(21, 21)
	out := NewGrid(21, 21)
	ComputeLightDirectional(res, out, 10, 10, Circle, 0, 8, 6, 4, 3, 2)

	if out[10][10+5] <= 0 {
		t.Errorf("cell 5 ahead should be lit (forward radius 8)")
	}
	if out[10][10-5] != 0 {
		t.Errorf("cell 5 behind should be dark (back radius 2), got %v", out[10][10-5])
	}
	if out[10][10-1] <= 0 {
		t.Errorf("cell 1 behind should still be lit (back radius 2)")
	}
}

func TestComputeLightCornerOrigin(t *testing.T) {
	// An origin on the grid corner only reaches one quadrant; the octants
	// pointing off the map must not index out of bounds.
	res := openResistance(6, 6)
	out := ComputeLight(res, NewGrid(6, 6), 0, 0, 4, Square)

	if out[0][0] != 1.0 {
		t.Errorf("corner origin light = %v, want 1.0", out[0][0])
	}
	if out[3][3] <= 0 {
		t.Error("in-grid diagonal cell should be lit from the corner")
	}
	if out[5][5] != 0 {
		t.Errorf("cell beyond radius lit: %v", out[5][5])
	}
}

func TestComputeLightOutOfBoundsOrigin(t *testing.T) {
	// A misplaced origin produces an all-dark map instead of panicking.
	res := openResistance(5, 5)
	out := NewGrid(5, 5)
	ComputeLight(res, out, -3, 12, 6, Circle)

	for y := range out {
		for x := range out[y] {
			if out[y][x] != 0 {
				t.Fatalf("cell (%d,%d) lit from an out-of-bounds origin", x, y)
			}
		}
	}
}
