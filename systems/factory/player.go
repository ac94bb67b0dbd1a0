package factory

import (
	"log"

	"github.com/automoto/dracula/archetypes"
	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/physics"
	"github.com/automoto/dracula/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SpawnPlayer creates the player's body in the physics world at x, y (feet
// centered on the point) and then the player entity.
func SpawnPlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	world := physicsWorld(ecs)
	if world == nil {
		log.Printf("Warning: SpawnPlayer: no physics world")
		return nil
	}
	body := world.NewBody(physics.BodyOptions{
		X:        x,
		Y:        y + cfg.Player.Height/2,
		Width:    cfg.Player.Width,
		Height:   cfg.Player.Height,
		Mass:     cfg.Player.Mass,
		Friction: cfg.Player.Friction,
		Radius:   cfg.Player.CornerRadius,
		Layer:    physics.LayerPlayer,
		Collides: physics.LayerGround,
	})
	return CreatePlayer(ecs, body, cfg.Player.Width, cfg.Player.Height)
}

// CreatePlayer builds the player entity around an existing body, with
// tuning copied from config.
func CreatePlayer(ecs *ecs.ECS, body physics.Port, width, height float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Body.SetValue(player, components.BodyData{
		Port:   body,
		Width:  width,
		Height: height,
	})

	pos := body.Position()
	obj := resolv.NewObject(pos.X-width/2, pos.Y-height/2, width, height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	var offset *math.Vec2
	if cfg.Player.GroundCheckEnabled {
		offset = &math.Vec2{X: cfg.Player.GroundCheckOffsetX, Y: cfg.Player.GroundCheckOffsetY}
	}
	components.Player.SetValue(player, components.PlayerData{
		Facing:            components.FacingRight,
		JumpCharges:       cfg.Player.MaxJumps,
		MaxJumpCharges:    cfg.Player.MaxJumps,
		GroundCheckOffset: offset,
		GroundCheckRadius: cfg.Player.GroundCheckRadius,
		MovementForce:     cfg.Player.MovementForce,
		JumpImpulse:       cfg.Player.JumpImpulse,
		MaxVelocity:       cfg.Player.MaxVelocity,
		FallDeathY:        cfg.Player.FallDeathY,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})

	var inv components.InventoryData
	inv.Counts[components.ItemHealingVial] = cfg.Player.StartingVials
	inv.Counts[components.ItemSunShield] = cfg.Player.StartingShields
	components.Inventory.SetValue(player, inv)

	return player
}
