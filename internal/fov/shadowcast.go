package fov

// Recursive shadowcasting. One octant is scanned row by row, with each run
// of opaque cells spawning exactly one child scan for the wedge beyond it;
// the eight octant transforms extend the single routine to the full circle.
// The light, cone, and direction-weighted entry points below share this
// skeleton and differ only in how a reached cell's brightness is derived.

// lightScan carries the per-call state threaded through the octant recursion.
type lightScan struct {
	res    Grid
	out    Grid
	ox, oy int
	radius float64 // uniform radius; for direction-weighted scans the largest bucket
	decay  float64
	metric Metric

	cone   bool
	facing float64 // turns
	span   float64 // turns

	radii []float64 // eight direction-bucket radii, nil for uniform falloff
}

// ComputeLight overwrites out with the light cast from (ox, oy): linear
// falloff 1 − distance/radius out to radius, occluded by cells whose
// resistance reaches 1.0. The origin is lit with min(1, radius) so it is
// never under-lit even when radius < 1. A radius of zero or less lights
// only the origin. out must match res's dimensions; the filled out is
// returned for chaining.
//
// The scan holds no shared state, so concurrent calls are safe as long as
// each gets its own out buffer.
func ComputeLight(res, out Grid, ox, oy int, radius float64, metric Metric) Grid {
	s := &lightScan{res: res, out: out, ox: ox, oy: oy, radius: radius, metric: metric}
	s.run()
	return out
}

// ComputeLightAngled is ComputeLight restricted to a cone: cells whose
// direction from the origin falls outside span degrees centered on angle
// degrees stay dark. Occluders outside the cone still cast their shadows.
func ComputeLightAngled(res, out Grid, ox, oy int, radius float64, metric Metric, angle, span float64) Grid {
	s := &lightScan{
		res: res, out: out, ox: ox, oy: oy, radius: radius, metric: metric,
		cone: true, facing: degToTurns(angle), span: span / 360,
	}
	s.run()
	return out
}

// ComputeLightDirectional casts light whose reach depends on direction:
// the five bucket radii cover facing-forward through directly-behind in 45°
// steps, mirrored to the other side, and a cell's effective radius is
// interpolated between the two buckets straddling its angle. Both the
// falloff and the occlusion cutoff use the interpolated value. angle is the
// facing direction in degrees.
func ComputeLightDirectional(res, out Grid, ox, oy int, metric Metric, angle, forward, sideForward, side, sideBack, back float64) Grid {
	radii := []float64{forward, sideForward, side, sideBack, back}
	max := 0.0
	for _, r := range radii {
		if r > max {
			max = r
		}
	}
	s := &lightScan{
		res: res, out: out, ox: ox, oy: oy, radius: max, metric: metric,
		facing: degToTurns(angle), radii: radii,
	}
	s.run()
	return out
}

func (s *lightScan) run() {
	s.out.Reset()
	if !s.res.InBounds(s.ox, s.oy) {
		return
	}
	s.out[s.oy][s.ox] = clamp01(s.radius)
	if s.radius <= 0 {
		return
	}
	s.decay = 1 / s.radius
	for _, o := range octants {
		s.castOctant(1, 1.0, 0.0, o)
	}
}

// castOctant scans one octant from the given row outward. start and end are
// the slope bounds of the still-visible wedge; the scan is done once the
// wedge is consumed (start < end) or the row exceeds the radius.
func (s *lightScan) castOctant(row int, start, end float64, o octant) {
	if start < end {
		return
	}
	newStart := start
	blocked := false
	for dist := row; float64(dist) <= s.radius && !blocked; dist++ {
		dy := -dist
		for dx := -dist; dx <= 0; dx++ {
			wx := s.ox + dx*o.xx + dy*o.xy
			wy := s.oy + dx*o.yx + dy*o.yy

			// Slopes of the cell's outer and inner edges.
			leftSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rightSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if !s.res.InBounds(wx, wy) || start < rightSlope {
				continue
			}
			if end > leftSlope {
				break
			}

			s.lightCell(wx, wy, dx, dy)

			opaque := s.res[wy][wx] >= 1
			if blocked {
				if opaque {
					// Still inside the opaque run; keep narrowing.
					newStart = rightSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && float64(dist) < s.cutoff(wx, wy) {
				// First cell of an opaque run: scan the wedge beyond it,
				// then resume this row past the run.
				blocked = true
				s.castOctant(dist+1, start, leftSlope, o)
				newStart = rightSlope
			}
		}
	}
}

// lightCell writes the brightness for a reached cell, honoring the cone and
// direction-weighted policies. Writes are monotonic maxima, so octant
// overlap and evaluation order cannot darken a cell.
func (s *lightScan) lightCell(wx, wy, dx, dy int) {
	d := s.metric.Distance(float64(dx), float64(dy))
	r := s.radius
	decay := s.decay
	if s.cone {
		if !inCone(turnsOf(float64(wx-s.ox), float64(wy-s.oy)), s.facing, s.span) {
			return
		}
	}
	if s.radii != nil {
		r = s.radiusToward(wx, wy)
		if r <= 0 {
			return
		}
		decay = 1 / r
	}
	if d > r {
		return
	}
	bright := clamp01(1 - decay*d)
	if bright > s.out[wy][wx] {
		s.out[wy][wx] = bright
	}
}

// cutoff returns the radius bounding the blocking transition at a cell: the
// uniform radius normally, the interpolated directional radius when bucket
// radii are in play.
func (s *lightScan) cutoff(wx, wy int) float64 {
	if s.radii == nil {
		return s.radius
	}
	return s.radiusToward(wx, wy)
}

// radiusToward interpolates the effective radius for the direction from the
// origin to (wx, wy). The absolute angular offset from facing, in [0, 0.5]
// turns, spans the five buckets in 1/8-turn steps; offsets between buckets
// blend linearly.
func (s *lightScan) radiusToward(wx, wy int) float64 {
	t := turnDiff(s.facing, turnsOf(float64(wx-s.ox), float64(wy-s.oy)))
	pos := t * 8
	if pos < 0 {
		pos = -pos
	}
	i := int(pos)
	if i >= len(s.radii)-1 {
		return s.radii[len(s.radii)-1]
	}
	frac := pos - float64(i)
	return s.radii[i] + (s.radii[i+1]-s.radii[i])*frac
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
