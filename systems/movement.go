package systems

import (
	stdmath "math"

	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/physics"
	"github.com/automoto/dracula/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var down = math.Vec2{X: 0, Y: -1}

// UpdateMovement pushes the player along the sampled intent each fixed step.
// A ray cast just ahead of the body measures the ground slope; on a slope the
// push gets an upward component so the player climbs instead of stalling.
func UpdateMovement(ecs *ecs.ECS) {
	eachLivingPlayer(ecs, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		body := components.Body.Get(e)

		dir := player.Intent
		if dir.X != 0 || dir.Y != 0 {
			pos := body.Position()
			origin := math.Vec2{X: pos.X + gamemath.SignOrOne(dir.X), Y: pos.Y}
			angle := 0.0
			if hit, ok := body.Raycast(origin, down, player.GroundCheckRadius+1, physics.LayerGround); ok {
				angle = gamemath.SlopeAngle(hit.Normal)
			}
			dir = gamemath.SlopeDirection(dir, angle)

			body.ApplyForce(gamemath.Scale(dir, player.MovementForce))
			updateFacing(player, dir.X)
		}

		clampVelocity(body, player.MaxVelocity)
		updateLocomotionAnimation(ecs, player)
	})
}

func updateFacing(player *components.PlayerData, x float64) {
	switch {
	case x > 0:
		player.Facing = components.FacingRight
	case x < 0:
		player.Facing = components.FacingLeft
	}
}

func clampVelocity(body *components.BodyData, maxVelocity float64) {
	v := body.Velocity()
	clamped := gamemath.ClampMagnitude(v, maxVelocity)
	if clamped != v {
		body.SetVelocity(clamped)
	}
}

// Walk and Idle are only re-issued when the grounded locomotion state flips.
func updateLocomotionAnimation(ecs *ecs.ECS, player *components.PlayerData) {
	if !player.Grounded {
		return
	}
	moving := stdmath.Abs(player.Intent.X) > cfg.Player.WalkThreshold
	switch {
	case moving && !player.Walking:
		player.Walking = true
		presenter(ecs).PlayAnimation(cfg.AnimWalk)
		PlaySFX(ecs, cfg.SoundWalk)
	case !moving && player.Walking:
		player.Walking = false
		presenter(ecs).PlayAnimation(cfg.AnimIdle)
	}
}
