package fov

import "iter"

// Light map composition. Both policies are elementwise, associative, and
// commutative over the maps combined, and tolerate mismatched dimensions by
// accumulating only over the overlapping region rather than erroring.

// Compose returns a new grid holding the clamped elementwise sum of the
// given maps. The result takes the first map's dimensions; later maps
// contribute over the region they share with it.
func Compose(maps ...Grid) Grid {
	var out Grid
	for _, m := range maps {
		out = addInto(out, m)
	}
	if out == nil {
		out = NewGrid(0, 0)
	}
	return out
}

// ComposeSeq is Compose over a lazily produced sequence of maps.
func ComposeSeq(maps iter.Seq[Grid]) Grid {
	var out Grid
	for m := range maps {
		out = addInto(out, m)
	}
	if out == nil {
		out = NewGrid(0, 0)
	}
	return out
}

// ComposeGated returns the clamped elementwise sum of the maps, but a cell
// accumulates only while the visibility bitmap marks it visible; cells the
// bitmap does not cover or does not mark stay at 0 regardless of the maps'
// values. The result matches the bitmap's dimensions.
func ComposeGated(vis Bitmap, maps ...Grid) Grid {
	out := NewGrid(vis.Width(), vis.Height())
	for _, m := range maps {
		addGated(out, vis, m)
	}
	return out
}

// ComposeGatedSeq is ComposeGated over a lazily produced sequence of maps.
func ComposeGatedSeq(vis Bitmap, maps iter.Seq[Grid]) Grid {
	out := NewGrid(vis.Width(), vis.Height())
	for m := range maps {
		addGated(out, vis, m)
	}
	return out
}

// addInto accumulates m into acc over their overlap. A nil acc starts as a
// clamped copy of m.
func addInto(acc Grid, m Grid) Grid {
	if acc == nil {
		acc = NewGrid(m.Width(), m.Height())
	}
	for y := 0; y < min(len(acc), len(m)); y++ {
		for x := 0; x < min(len(acc[y]), len(m[y])); x++ {
			acc[y][x] = clamp01(acc[y][x] + m[y][x])
		}
	}
	return acc
}

// addGated accumulates m into acc over their overlap, only at cells the
// bitmap marks visible.
func addGated(acc Grid, vis Bitmap, m Grid) {
	for y := 0; y < min(len(acc), len(m)); y++ {
		for x := 0; x < min(len(acc[y]), len(m[y])); x++ {
			if vis[y][x] {
				acc[y][x] = clamp01(acc[y][x] + m[y][x])
			}
		}
	}
}
