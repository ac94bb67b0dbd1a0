package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// SlopeAngle returns the unsigned angle in degrees between a surface normal
// and straight up. Flat ground is 0, as is a normal that is zero or not
// finite.
func SlopeAngle(normal dmath.Vec2) float64 {
	length := math.Hypot(normal.X, normal.Y)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return 0
	}
	cos := ClampFloat(normal.Y/length, -1, 1)
	deg := math.Acos(cos) * 180 / math.Pi
	// Treat solver noise on flat tiles as flat.
	if deg < 1e-4 {
		return 0
	}
	return deg
}

// SlopeDirection bends a horizontal intent to follow a slope. The vertical
// component copies the horizontal one, which pushes the body up hills.
func SlopeDirection(dir dmath.Vec2, slopeAngle float64) dmath.Vec2 {
	if slopeAngle == 0 {
		return dir
	}
	return dmath.Vec2{X: dir.X, Y: dir.X}
}

// SignOrOne returns -1 for negative values and 1 otherwise, so a zero input
// still probes to the right.
func SignOrOne(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
