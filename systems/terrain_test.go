package systems

import (
	"testing"

	"github.com/automoto/dracula/assets"
	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/presentation"
	"github.com/automoto/dracula/shared/gamemath"
	"github.com/automoto/dracula/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// newCastleWalker spawns a real Chipmunk player with its feet at x, y on the
// castle's ground shapes.
func newCastleWalker(t *testing.T, x, y float64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	level, err := assets.LoadLevel("levels/castle.tmx")
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateServices(e, presentation.Discard)
	factory.CreatePhysicsWorld(e)
	for _, r := range level.Ground {
		factory.CreateGround(e, r)
	}
	player := factory.SpawnPlayer(e, x, y)
	require.NotNil(t, player)

	getOrCreateClock(e).StepDelta = cfg.World.FixedDelta
	return e, player
}

// walk runs the movement steps with a fixed intent until done reports true
// or the time runs out, and returns the final position.
func walk(e *ecs.ECS, player *donburi.Entry, intent float64, seconds float64, done func(math.Vec2) bool) math.Vec2 {
	body := components.Body.Get(player)
	steps := int(seconds / cfg.World.FixedDelta)
	for range steps {
		components.Player.Get(player).Intent = math.Vec2{X: intent}
		UpdateGrounding(e)
		UpdateMovement(e)
		StepPhysics(e)
		if done(body.Position()) {
			break
		}
	}
	return body.Position()
}

// The castle slope runs from x=24 (y=2) up to the ledge at x=28 (y=4).
func TestWalkUpCastleSlope(t *testing.T) {
	e, player := newCastleWalker(t, 21, 2)

	pos := walk(e, player, 1, 6, func(p math.Vec2) bool { return p.X > 30 })

	assert.Greater(t, pos.X, 30.0, "stalled at %v", pos)
}

func TestWalkDownCastleSlope(t *testing.T) {
	e, player := newCastleWalker(t, 34, 4)

	pos := walk(e, player, -1, 6, func(p math.Vec2) bool { return p.X < 22 })

	assert.Less(t, pos.X, 22.0, "stalled at %v", pos)
}

func TestStepPhysicsClampsIntegratedSpeed(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateServices(e, presentation.Discard)
	factory.CreatePhysicsWorld(e)
	player := factory.SpawnPlayer(e, 0, 10)
	require.NotNil(t, player)
	getOrCreateClock(e).StepDelta = 0.02

	body := components.Body.Get(player)
	body.ApplyForce(math.Vec2{X: 5000})
	StepPhysics(e)

	v := body.Velocity()
	maxVelocity := components.Player.Get(player).MaxVelocity
	assert.InDelta(t, maxVelocity, gamemath.Length(v), 1e-6)
	assert.Positive(t, v.X)
}
