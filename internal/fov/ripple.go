package fov

import "sort"

// The ripple engine spreads light breadth-first instead of casting shadows.
// Each cell's brightness is seeded from its already-lit neighbors minus
// travel distance and the neighbor's resistance, so partial resistances
// dim light gradually — something the near-binary occluder model of
// shadowcasting cannot express. The price is roughly an order of magnitude
// more work per call; pick ripple for quality, shadowcasting for speed.

// rippleDirs is the fixed neighbor enumeration order. The queue is strictly
// first-in-first-out, so keeping this order fixed keeps results
// reproducible at tie-breaking cells.
var rippleDirs = [8]Point{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// RippleScratch holds the engine's reusable working state: the pending-cell
// queue and the map of cells that have stopped propagating. Reusing one
// scratch across calls avoids per-call allocation; every top-level call
// clears it first, so no state leaks between calls.
//
// A scratch is not reentrant. Concurrent or nested calls on the same
// scratch corrupt each other; give each goroutine its own, or serialize.
type RippleScratch struct {
	queue    []Point
	head     int
	indirect Bitmap
	nearby   []Point
}

// NewRippleScratch returns an empty scratch. Buffers grow on first use and
// are retained for later calls.
func NewRippleScratch() *RippleScratch {
	return &RippleScratch{}
}

// reset prepares the scratch for a grid of the given dimensions.
func (s *RippleScratch) reset(width, height int) {
	s.queue = s.queue[:0]
	s.head = 0
	if s.indirect.Width() != width || s.indirect.Height() != height {
		s.indirect = NewBitmap(width, height)
	} else {
		s.indirect.Reset()
	}
}

// ComputeRipple overwrites out with light flood-filled from (ox, oy).
// looseness (1–6) sets how many of a cell's nearest-to-origin neighbors
// feed its brightness: 1 spreads tightly and angularly, 6 spreads round and
// omnidirectional and is the usual choice for sound. The filled out is
// returned.
func (s *RippleScratch) ComputeRipple(res, out Grid, looseness, ox, oy int, radius float64, metric Metric) Grid {
	return s.compute(res, out, looseness, ox, oy, radius, metric, false, 0, 0)
}

// ComputeRippleAngled is ComputeRipple restricted to a cone of span degrees
// centered on angle degrees; propagation directions outside the cone are
// discarded.
func (s *RippleScratch) ComputeRippleAngled(res, out Grid, looseness, ox, oy int, radius float64, metric Metric, angle, span float64) Grid {
	return s.compute(res, out, looseness, ox, oy, radius, metric, true, degToTurns(angle), span/360)
}

func (s *RippleScratch) compute(res, out Grid, looseness, ox, oy int, radius float64, metric Metric, cone bool, facing, span float64) Grid {
	out.Reset()
	if !res.InBounds(ox, oy) {
		return out
	}
	out[oy][ox] = clamp01(radius)
	if radius <= 0 || looseness < 1 {
		return out
	}
	if looseness > 6 {
		looseness = 6
	}
	decay := 1 / radius

	s.reset(res.Width(), res.Height())
	s.queue = append(s.queue, Point{ox, oy})
	for s.head < len(s.queue) {
		p := s.queue[s.head]
		s.head++
		if out[p.Y][p.X] <= 0 || s.indirect[p.Y][p.X] {
			continue // already fully processed
		}
		for _, d := range rippleDirs {
			x2, y2 := p.X+d.X, p.Y+d.Y
			if !res.InBounds(x2, y2) {
				continue
			}
			if metric.Distance(float64(x2-ox), float64(y2-oy)) >= radius+1 {
				continue
			}
			if cone && !inCone(turnsOf(float64(x2-ox), float64(y2-oy)), facing, span) {
				continue
			}
			light := s.nearLight(res, out, x2, y2, ox, oy, looseness, decay, metric)
			if light > out[y2][x2] {
				out[y2][x2] = clamp01(light)
				// Opaque cells receive light but never relay it.
				if res[y2][x2] < 1 {
					s.queue = append(s.queue, Point{x2, y2})
				}
			}
		}
	}
	return out
}

// nearLight derives the brightness of (x, y) from up to looseness of its
// neighbors, the ones nearest the origin: the best neighbor light minus
// travel distance decay minus that neighbor's resistance. It also decides
// whether (x, y) stops propagating: opaque cells always do, as do cells
// where a majority of the sampled lit neighbors had themselves stopped.
func (s *RippleScratch) nearLight(res, out Grid, x, y, ox, oy, looseness int, decay float64, metric Metric) float64 {
	if x == ox && y == oy {
		return out[oy][ox]
	}
	s.nearby = s.nearby[:0]
	for _, d := range rippleDirs {
		nx, ny := x+d.X, y+d.Y
		if res.InBounds(nx, ny) {
			s.nearby = append(s.nearby, Point{nx, ny})
		}
	}
	// Stable sort keeps the rippleDirs order between equidistant neighbors.
	sort.SliceStable(s.nearby, func(i, j int) bool {
		di := metric.Distance(float64(s.nearby[i].X-ox), float64(s.nearby[i].Y-oy))
		dj := metric.Distance(float64(s.nearby[j].X-ox), float64(s.nearby[j].Y-oy))
		return di < dj
	})
	if len(s.nearby) > looseness {
		s.nearby = s.nearby[:looseness]
	}

	light := 0.0
	lit, indirects := 0, 0
	for _, n := range s.nearby {
		nl := out[n.Y][n.X]
		if nl <= 0 {
			continue
		}
		lit++
		if s.indirect[n.Y][n.X] {
			indirects++
		}
		d := metric.Distance(float64(x-n.X), float64(y-n.Y))
		if cand := nl - d*decay - res[n.Y][n.X]; cand > light {
			light = cand
		}
	}
	if res[y][x] >= 1 || (lit > 0 && 2*indirects > lit) {
		s.indirect[y][x] = true
	}
	return light
}
