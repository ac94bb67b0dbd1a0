package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi/features/math"
)

// Body is a dynamic Chipmunk body. It implements Port, with queries
// answered by the world the body lives in.
type Body struct {
	world *World
	body  *cp.Body
	shape *cp.Shape
}

var _ Port = (*Body)(nil)

func (b *Body) Position() math.Vec2 {
	p := b.body.Position()
	return math.Vec2{X: p.X, Y: p.Y}
}

// SetPosition teleports the body, keeping its velocity.
func (b *Body) SetPosition(p math.Vec2) {
	b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
}

func (b *Body) Velocity() math.Vec2 {
	v := b.body.Velocity()
	return math.Vec2{X: v.X, Y: v.Y}
}

func (b *Body) SetVelocity(v math.Vec2) {
	b.body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
}

// ApplyForce accumulates a force at the center of mass until the next step.
func (b *Body) ApplyForce(f math.Vec2) {
	b.body.ApplyForceAtWorldPoint(cp.Vector{X: f.X, Y: f.Y}, b.body.Position())
}

// ApplyImpulse changes velocity immediately by j / mass.
func (b *Body) ApplyImpulse(j math.Vec2) {
	b.body.ApplyImpulseAtWorldPoint(cp.Vector{X: j.X, Y: j.Y}, b.body.Position())
}

func (b *Body) Raycast(origin, direction math.Vec2, maxDistance float64, mask Layer) (Hit, bool) {
	return b.world.Raycast(origin, direction, maxDistance, mask)
}

func (b *Body) OverlapCircle(center math.Vec2, radius float64, mask Layer) bool {
	return b.world.OverlapCircle(center, radius, mask)
}

