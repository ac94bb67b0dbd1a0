package systems

import (
	"fmt"
	"testing"

	"github.com/automoto/dracula/physics"
	"github.com/automoto/dracula/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// fakeBody is a physics.Port with scripted query answers. Impulses change
// velocity at once as for a unit mass; forces are only recorded.
type fakeBody struct {
	pos, vel math.Vec2

	forces   []math.Vec2
	impulses []math.Vec2

	hitNormal *math.Vec2 // nil means rays miss
	overlap   bool

	rays    []fakeRay
	circles []fakeCircle
}

type fakeRay struct {
	origin, dir math.Vec2
	maxDistance float64
	mask        physics.Layer
}

type fakeCircle struct {
	center math.Vec2
	radius float64
	mask   physics.Layer
}

func (b *fakeBody) Position() math.Vec2     { return b.pos }
func (b *fakeBody) Velocity() math.Vec2     { return b.vel }
func (b *fakeBody) SetVelocity(v math.Vec2) { b.vel = v }
func (b *fakeBody) ApplyForce(f math.Vec2)  { b.forces = append(b.forces, f) }

func (b *fakeBody) ApplyImpulse(j math.Vec2) {
	b.impulses = append(b.impulses, j)
	b.vel = math.Vec2{X: b.vel.X + j.X, Y: b.vel.Y + j.Y}
}

func (b *fakeBody) Raycast(origin, dir math.Vec2, maxDistance float64, mask physics.Layer) (physics.Hit, bool) {
	b.rays = append(b.rays, fakeRay{origin: origin, dir: dir, maxDistance: maxDistance, mask: mask})
	if b.hitNormal == nil {
		return physics.Hit{}, false
	}
	return physics.Hit{Normal: *b.hitNormal, Distance: 1}, true
}

func (b *fakeBody) OverlapCircle(center math.Vec2, radius float64, mask physics.Layer) bool {
	b.circles = append(b.circles, fakeCircle{center: center, radius: radius, mask: mask})
	return b.overlap
}

// recorder is a presentation.Port that logs every call as "Name(args)".
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) Initialize(maxHealth int)           { r.add("Initialize(%d)", maxHealth) }
func (r *recorder) SetHealth(value int)                { r.add("SetHealth(%d)", value) }
func (r *recorder) UpdateHealth(value int)             { r.add("UpdateHealth(%d)", value) }
func (r *recorder) UpdateInventory(vials, shields int) { r.add("UpdateInventory(%d,%d)", vials, shields) }
func (r *recorder) PlayAnimation(name string)          { r.add("PlayAnimation(%s)", name) }
func (r *recorder) SetSpriteAlpha(alpha float64)       { r.add("SetSpriteAlpha(%g)", alpha) }
func (r *recorder) ShowGameOver()                      { r.add("ShowGameOver()") }
func (r *recorder) HideGameplayUI()                    { r.add("HideGameplayUI()") }
func (r *recorder) StopCameraFollow()                  { r.add("StopCameraFollow()") }

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.calls = nil
}

type harness struct {
	ecs    *ecs.ECS
	ui     *recorder
	body   *fakeBody
	player *donburi.Entry
}

// newHarness builds a world with services and one player standing at the
// origin. setup runs before the player is created. Calls made while spawning
// are cleared.
func newHarness(t *testing.T, setup ...func(*ecs.ECS)) *harness {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	ui := &recorder{}
	factory.CreateServices(e, ui)
	for _, fn := range setup {
		fn(e)
	}

	body := &fakeBody{pos: math.Vec2{X: 0, Y: 1}}
	player := factory.CreatePlayer(e, body, 0.8, 1)
	StartPlayer(e, player)
	ui.reset()

	return &harness{ecs: e, ui: ui, body: body, player: player}
}

func (h *harness) frame(dt float64) {
	getOrCreateClock(h.ecs).FrameDelta = dt
}

func (h *harness) step(dt float64) {
	getOrCreateClock(h.ecs).StepDelta = dt
}

func (h *harness) pendingSFX() []int {
	var out []int
	for _, id := range getOrCreateAudio(h.ecs).PendingSFX {
		out = append(out, int(id))
	}
	return out
}
