package components

import (
	"github.com/automoto/dracula/physics"
	"github.com/yohamta/donburi"
)

// BodyData attaches a rigid body to an entity.
type BodyData struct {
	physics.Port
	Width, Height float64
}

var Body = donburi.NewComponentType[BodyData]()

// PhysicsWorldData is the singleton Chipmunk world for the level.
type PhysicsWorldData struct {
	*physics.World
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()
