package factory

import (
	"math"

	"github.com/automoto/dracula/archetypes"
	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds everything a loaded level describes: trigger space,
// physics world, ground, hazards, pickups, popups and blobs. The player and
// camera are created separately.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, path string) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Level: level, Path: path})

	cell := cfg.World.TriggerCell
	CreateSpace(ecs, int(math.Ceil(level.Width)), int(math.Ceil(level.Height)), cell, cell)
	CreatePhysicsWorld(ecs)

	for _, r := range level.Ground {
		CreateGround(ecs, r)
	}
	for _, h := range level.Hazards {
		CreateHazard(ecs, h)
	}
	for _, p := range level.Pickups {
		CreatePickup(ecs, p)
	}
	for _, p := range level.PopUps {
		CreatePopUpTrigger(ecs, p)
	}
	for _, b := range level.Blobs {
		CreateBlob(ecs, b)
	}
	return entry
}
