package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	dmath "github.com/yohamta/donburi/features/math"
)

// World owns the Chipmunk space for one level.
type World struct {
	space *cp.Space
}

// NewWorld creates an empty space with downward gravity (negative Y).
func NewWorld(gravity float64, iterations int) *World {
	space := cp.NewSpace()
	space.Iterations = uint(iterations)
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &World{space: space}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	return w.space
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// AddGround adds a static axis-aligned box. x, y is the bottom-left corner.
func (w *World) AddGround(x, y, width, height, friction float64) *cp.Shape {
	bb := cp.BB{L: x, B: y, R: x + width, T: y + height}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	return w.addStatic(shape, friction)
}

// AddSlope adds a static right triangle spanning the given box. Rising slopes
// go up to the right.
func (w *World) AddSlope(x, y, width, height, friction float64, rising bool) *cp.Shape {
	var verts []cp.Vector
	if rising {
		verts = []cp.Vector{{X: x, Y: y}, {X: x + width, Y: y}, {X: x + width, Y: y + height}}
	} else {
		verts = []cp.Vector{{X: x, Y: y}, {X: x + width, Y: y}, {X: x, Y: y + height}}
	}
	shape := cp.NewPolyShapeRaw(w.space.StaticBody, 3, verts, 0)
	return w.addStatic(shape, friction)
}

func (w *World) addStatic(shape *cp.Shape, friction float64) *cp.Shape {
	shape.SetFriction(friction)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(LayerGround), uint(LayerAll)))
	w.space.AddShape(shape)
	return shape
}

// BodyOptions describes a dynamic box body.
type BodyOptions struct {
	X, Y          float64 // Center
	Width, Height float64
	Mass          float64
	Friction      float64
	// Corner rounding, clamped to half the smaller side.
	Radius float64
	Layer  Layer
	// Layers this body collides with. Zero means all layers.
	Collides Layer
}

// NewBody adds a dynamic box that never rotates and returns its port.
func (w *World) NewBody(opts BodyOptions) *Body {
	mass := opts.Mass
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: opts.X, Y: opts.Y})

	r := math.Max(0, math.Min(opts.Radius, math.Min(opts.Width, opts.Height)/2))
	shape := cp.NewBox(body, opts.Width-2*r, opts.Height-2*r, r)
	shape.SetFriction(opts.Friction)
	collides := opts.Collides
	if collides == 0 {
		collides = LayerAll
	}
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(opts.Layer), uint(collides)))

	w.space.AddBody(body)
	w.space.AddShape(shape)

	return &Body{world: w, body: body, shape: shape}
}

// Remove takes a body out of the space.
func (w *World) Remove(b *Body) {
	if b == nil || b.body == nil {
		return
	}
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	b.body = nil
	b.shape = nil
}

// Raycast returns the first surface in mask hit by a segment from origin
// along direction.
func (w *World) Raycast(origin, direction dmath.Vec2, maxDistance float64, mask Layer) (Hit, bool) {
	length := math.Hypot(direction.X, direction.Y)
	if length == 0 || maxDistance <= 0 {
		return Hit{}, false
	}
	start := cp.Vector{X: origin.X, Y: origin.Y}
	end := cp.Vector{
		X: origin.X + direction.X/length*maxDistance,
		Y: origin.Y + direction.Y/length*maxDistance,
	}

	info := w.space.SegmentQueryFirst(start, end, 0, queryFilter(mask))
	if info.Shape == nil {
		return Hit{}, false
	}
	// A ray starting on a surface has no usable normal; report it as flat.
	normal := info.Normal
	if info.Alpha == 0 || !finite(normal.X) || !finite(normal.Y) {
		normal = cp.Vector{X: 0, Y: 1}
	}
	return Hit{
		Point:    dmath.Vec2{X: info.Point.X, Y: info.Point.Y},
		Normal:   dmath.Vec2{X: normal.X, Y: normal.Y},
		Distance: info.Alpha * maxDistance,
	}, true
}

// OverlapCircle reports whether any shape in mask lies within radius of center.
func (w *World) OverlapCircle(center dmath.Vec2, radius float64, mask Layer) bool {
	info := w.space.PointQueryNearest(cp.Vector{X: center.X, Y: center.Y}, radius, queryFilter(mask))
	return info != nil && info.Shape != nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func queryFilter(mask Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
}
