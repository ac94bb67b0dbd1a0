package archetypes

import (
	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
		components.Health,
		components.Immunity,
		components.Inventory,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	PopUpTrigger = newArchetype(
		tags.PopUp,
		components.PopUpTrigger,
		components.Object,
	)
	Blob = newArchetype(
		tags.Blob,
		components.Blob,
		components.Body,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	PhysicsWorld = newArchetype(
		components.PhysicsWorld,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
