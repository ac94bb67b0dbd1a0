package factory

import (
	"log"

	"github.com/automoto/dracula/archetypes"
	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/physics"
	"github.com/automoto/dracula/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePhysicsWorld spawns the singleton Chipmunk world using the current
// world tuning.
func CreatePhysicsWorld(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.PhysicsWorld.Spawn(ecs)
	world := physics.NewWorld(cfg.World.Gravity, cfg.World.Iterations)
	components.PhysicsWorld.SetValue(entry, components.PhysicsWorldData{World: world})
	return entry
}

// physicsWorld returns the level's physics world, or nil if none was created.
func physicsWorld(ecs *ecs.ECS) *physics.World {
	entry, ok := components.PhysicsWorld.First(ecs.World)
	if !ok {
		return nil
	}
	return components.PhysicsWorld.Get(entry).World
}

// CreateGround adds a static box or slope for one ground rect.
func CreateGround(ecs *ecs.ECS, r leveldata.Rect) {
	world := physicsWorld(ecs)
	if world == nil {
		log.Printf("Warning: CreateGround: no physics world")
		return
	}
	switch r.Slope {
	case leveldata.SlopeUpRight:
		world.AddSlope(r.X, r.Y, r.W, r.H, cfg.Player.Friction, true)
	case leveldata.SlopeUpLeft:
		world.AddSlope(r.X, r.Y, r.W, r.H, cfg.Player.Friction, false)
	default:
		world.AddGround(r.X, r.Y, r.W, r.H, cfg.Player.Friction)
	}
}
