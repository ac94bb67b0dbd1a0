package factory

import (
	"log"

	"github.com/automoto/dracula/archetypes"
	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/physics"
	"github.com/automoto/dracula/shared/leveldata"
	"github.com/automoto/dracula/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBlob spawns a patrolling blob standing on its start point.
func CreateBlob(ecs *ecs.ECS, b leveldata.Blob) *donburi.Entry {
	world := physicsWorld(ecs)
	if world == nil {
		log.Printf("Warning: CreateBlob: no physics world")
		return nil
	}

	w, h := cfg.Blob.Width, cfg.Blob.Height
	body := world.NewBody(physics.BodyOptions{
		X:        b.Start.X,
		Y:        b.Start.Y + h/2,
		Width:    w,
		Height:   h,
		Mass:     cfg.Blob.Mass,
		Layer:    physics.LayerEnemy,
		Collides: physics.LayerGround,
	})

	left, right := b.Left, b.Right
	if left > right {
		left, right = right, left
	}
	speed := b.Speed
	if speed <= 0 {
		speed = cfg.Blob.Speed
	}
	damage := b.Damage
	if damage <= 0 {
		damage = cfg.Blob.Damage
	}

	blob := archetypes.Blob.Spawn(ecs)
	components.Body.SetValue(blob, components.BodyData{Port: body, Width: w, Height: h})
	components.Blob.SetValue(blob, components.BlobData{
		Left:        left,
		Right:       right,
		Speed:       speed,
		Damage:      damage,
		MovingRight: true,
	})
	addToSpace(ecs, newTrigger(blob, b.Start.X-w/2, b.Start.Y, w, h, tags.ResolvBlob))
	return blob
}
