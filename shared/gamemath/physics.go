package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Length returns the magnitude of v.
func Length(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale multiplies v by s.
func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// Add returns a + b.
func Add(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// ClampMagnitude rescales v so its length does not exceed max, keeping its
// direction.
func ClampMagnitude(v dmath.Vec2, max float64) dmath.Vec2 {
	l := Length(v)
	if l <= max || l == 0 {
		return v
	}
	return Scale(v, max/l)
}

// Lerp moves a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
