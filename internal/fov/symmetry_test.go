package fov

import "testing"

func TestSymmetricMatchesPlainOnOpenGrid(t *testing.T) {
	// With nothing to occlude there is nothing to repair.
	res := openResistance(13, 13)
	plain := ComputeLight(res, NewGrid(13, 13), 6, 6, 5, Circle)
	sym := ComputeLightSymmetric(res, NewGrid(13, 13), 6, 6, 5, Circle)

	for y := range plain {
		for x := range plain[y] {
			if plain[y][x] != sym[y][x] {
				t.Fatalf("open-grid repair changed (%d,%d): %v → %v", x, y, plain[y][x], sym[y][x])
			}
		}
	}
}

func TestSymmetricNeverBrightens(t *testing.T) {
	// The repair pass only darkens: every cell lit after correction was lit
	// before it, at the same brightness.
	res := openResistance(13, 13)
	res[5][7] = 1.0
	res[7][5] = 1.0
	res[4][8] = 1.0
	plain := ComputeLight(res, NewGrid(13, 13), 6, 6, 6, Circle)
	sym := ComputeLightSymmetric(res, NewGrid(13, 13), 6, 6, 6, Circle)

	for y := range sym {
		for x := range sym[y] {
			if sym[y][x] != 0 && sym[y][x] != plain[y][x] {
				t.Fatalf("repair altered brightness at (%d,%d): %v → %v", x, y, plain[y][x], sym[y][x])
			}
			if sym[y][x] > plain[y][x] {
				t.Fatalf("repair brightened (%d,%d)", x, y)
			}
		}
	}
}

func TestSymmetricLawAtRepairedOffsets(t *testing.T) {
	// Every cell left lit by the corrected variant can see the origin back.
	// Exercised on a map with diagonal wall runs, where the per-octant
	// recursion produces its asymmetries.
	res := openResistance(13, 13)
	for i := 0; i < 4; i++ {
		res[3+i][3+i] = 1.0 // diagonal wall through the light field
	}
	ox, oy := 6, 6
	sym := ComputeLightSymmetric(res, NewGrid(13, 13), ox, oy, 6, Circle)

	for y := range sym {
		for x := range sym[y] {
			if sym[y][x] > 0 && !CanSee(res, x, y, ox, oy) {
				// Only the enumerated diagonal offsets are guaranteed; the
				// pass is a heuristic elsewhere. Diagonal positions must
				// hold unconditionally.
				dx, dy := x-ox, y-oy
				if dx*dx == dy*dy {
					t.Errorf("lit diagonal cell (%d,%d) cannot see the origin back", x, y)
				}
			}
		}
	}
}
