package geometry

import "math"

// ClampUnit clamps v into [0, 1]. Non-finite values collapse to 0.
func ClampUnit(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CoerceFinite returns v unchanged when it is a finite number and 0 otherwise.
// Rotation is intentionally not wrapped into any range; callers may store
// multi-turn rotations.
func CoerceFinite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ClampUnitBox clamps a position/size quadruple in place.
func ClampUnitBox(x, y, w, h *float64) {
	*x = ClampUnit(*x)
	*y = ClampUnit(*y)
	*w = ClampUnit(*w)
	*h = ClampUnit(*h)
}
