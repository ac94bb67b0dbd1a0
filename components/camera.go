package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world-space point at the center of the screen.
type CameraData struct {
	Position math.Vec2
	Follow   bool
}

var Camera = donburi.NewComponentType[CameraData]()
