// Package physics exposes the rigid body operations the player controllers
// depend on, and a Chipmunk2D backed implementation of them.
package physics

import "github.com/yohamta/donburi/features/math"

// Layer is a collision category bit. Masks combine layers with |.
type Layer uint

const (
	LayerGround Layer = 1 << iota
	LayerPlayer
	LayerEnemy

	LayerAll = LayerGround | LayerPlayer | LayerEnemy
)

// Hit is the closest surface found by a raycast.
type Hit struct {
	Point    math.Vec2
	Normal   math.Vec2
	Distance float64
}

// Port is everything the simulation core needs from a physics engine.
// World coordinates are Y up.
type Port interface {
	Position() math.Vec2
	Velocity() math.Vec2
	SetVelocity(v math.Vec2)
	ApplyForce(f math.Vec2)
	ApplyImpulse(j math.Vec2)
	Raycast(origin, direction math.Vec2, maxDistance float64, mask Layer) (Hit, bool)
	OverlapCircle(center math.Vec2, radius float64, mask Layer) bool
}
