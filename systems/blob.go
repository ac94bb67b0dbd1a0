package systems

import (
	"github.com/automoto/dracula/components"
	"github.com/automoto/dracula/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateBlobs walks each blob back and forth between its patrol bounds.
func UpdateBlobs(ecs *ecs.ECS) {
	tags.Blob.Each(ecs.World, func(e *donburi.Entry) {
		blob := components.Blob.Get(e)
		body := components.Body.Get(e)

		x := body.Position().X
		if x <= blob.Left && !blob.MovingRight {
			blob.MovingRight = true
		} else if x >= blob.Right && blob.MovingRight {
			blob.MovingRight = false
		}

		speed := -blob.Speed
		if blob.MovingRight {
			speed = blob.Speed
		}
		v := body.Velocity()
		body.SetVelocity(math.Vec2{X: speed, Y: v.Y})
	})
}
