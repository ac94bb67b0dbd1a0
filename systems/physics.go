package systems

import (
	"github.com/automoto/dracula/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StepPhysics advances the Chipmunk space by one fixed step, clamps player
// speed, then moves every trigger box to its body.
func StepPhysics(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)

	worldEntry, ok := components.PhysicsWorld.First(ecs.World)
	if !ok {
		return
	}
	components.PhysicsWorld.Get(worldEntry).Step(clock.StepDelta)

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		clampVelocity(components.Body.Get(e), components.Player.Get(e).MaxVelocity)
	})

	syncObjects(ecs)
}

// syncObjects centers each resolv object on its body.
func syncObjects(ecs *ecs.ECS) {
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		body := components.Body.Get(e)
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		pos := body.Position()
		obj.X = pos.X - obj.W/2
		obj.Y = pos.Y - obj.H/2
		obj.Update()
	})
}
