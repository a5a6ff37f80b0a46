package fov

import "math"

// TraceBouncingRay walks a single ray from (ox, oy) at angle degrees in unit
// steps, depositing a brightness that deteriorates by 1/distance per step.
// Cell writes are monotonic maxima, so a later dim pass never darkens a
// brighter earlier one. An opaque cell hit with more than one decay step of
// brightness left acts as a mirror: the step counter restarts and the wall's
// orientation is read from the hit cell's neighbors rather than from the
// cell behind the ray, since a head-on ray's own back-step cell is the open
// floor it just crossed. The horizontal velocity flips when the neighbor
// offset vertically against the ray is opaque (a vertical face), the
// vertical when the horizontally offset neighbor is (a horizontal face).
// Walls and inner corners reflect; a diagonal hit on an isolated pillar
// matches neither neighbor and passes through. The walk ends when the
// brightness runs out, the step count exceeds distance, or the ray leaves
// the grid.
func TraceBouncingRay(res, out Grid, ox, oy int, distance float64, angle float64) Grid {
	out.Reset()
	if !res.InBounds(ox, oy) {
		return out
	}
	out[oy][ox] = clamp01(distance)
	if distance <= 0 {
		return out
	}
	decay := 1 / distance

	rad := degToTurns(angle) * 2 * math.Pi
	vx, vy := math.Cos(rad), math.Sin(rad)
	x, y := float64(ox), float64(oy)
	light := 1.0
	steps := 0

	for light > 0 && float64(steps) < distance {
		x += vx
		y += vy
		cx, cy := int(math.Round(x)), int(math.Round(y))
		if !res.InBounds(cx, cy) {
			break
		}
		steps++
		light -= decay
		if light <= 0 {
			break
		}
		if v := min(light, 1.0); v > out[cy][cx] {
			out[cy][cx] = v
		}
		if res[cy][cx] >= 1 && light > decay {
			// Mirror. The neighbor one step back along a single axis tells
			// the wall's orientation: opaque along y means a vertical face
			// (flip the horizontal component), opaque along x a horizontal
			// face. A diagonal hit on an isolated pillar matches neither
			// and passes through; an inner corner matches both and bounces
			// straight back.
			steps = 0
			sx, sy := stepSign(vx), stepSign(vy)
			if res.BlockedAt(cx, cy-sy) {
				vx = -vx
			}
			if res.BlockedAt(cx-sx, cy) {
				vy = -vy
			}
		}
	}
	return out
}

func stepSign(v float64) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
