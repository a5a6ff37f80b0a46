package fov

import "math"

// Angles inside the engine are turn fractions: 1.0 is one full rotation.
// Turns make wrap-around comparisons plain modulo arithmetic, where degrees
// and radians both need special-casing around their seam.

// turnsOf returns the direction of the offset (dx, dy) as a turn fraction
// in [0, 1). Angle 0 points along +x; angles grow toward +y, which on a
// y-down grid is the clockwise screen direction.
func turnsOf(dx, dy float64) float64 {
	t := math.Atan2(dy, dx) / (2 * math.Pi)
	if t < 0 {
		t++
	}
	return t
}

// turnDiff returns the signed shortest rotation from a to b, in (-0.5, 0.5].
func turnDiff(a, b float64) float64 {
	d := math.Mod(b-a, 1)
	if d > 0.5 {
		d--
	} else if d <= -0.5 {
		d++
	}
	return d
}

// inCone reports whether direction t lies within half a span to either side
// of facing, with wrap-around.
func inCone(t, facing, span float64) bool {
	return math.Abs(turnDiff(facing, t)) <= span/2
}

// degToTurns converts a public-API degree angle to a turn fraction in [0, 1).
func degToTurns(deg float64) float64 {
	t := math.Mod(deg/360, 1)
	if t < 0 {
		t++
	}
	return t
}
