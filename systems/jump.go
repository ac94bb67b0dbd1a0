package systems

import (
	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/physics"
	"github.com/automoto/dracula/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateJump consumes the jump latched by UpdatePlayerInput. Vertical velocity
// is zeroed before the impulse so every jump reaches the same height. The
// latch is cleared every step whether or not a charge was left.
func UpdateJump(ecs *ecs.ECS) {
	eachLivingPlayer(ecs, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.JumpRequested {
			return
		}
		player.JumpRequested = false
		if player.JumpCharges <= 0 {
			return
		}

		body := components.Body.Get(e)
		v := body.Velocity()
		body.SetVelocity(math.Vec2{X: v.X, Y: 0})
		body.ApplyImpulse(math.Vec2{X: 0, Y: player.JumpImpulse})
		player.JumpCharges--

		presenter(ecs).PlayAnimation(cfg.AnimJump)
		PlaySFX(ecs, cfg.SoundJump)
	})
}

// UpdateGrounding probes a small circle at the player's feet. Jump charges
// are refilled only on the step the player lands, not while standing.
func UpdateGrounding(ecs *ecs.ECS) {
	eachLivingPlayer(ecs, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.GroundCheckOffset == nil {
			return
		}
		body := components.Body.Get(e)

		probe := gamemath.Add(body.Position(), *player.GroundCheckOffset)
		grounded := body.OverlapCircle(probe, player.GroundCheckRadius, physics.LayerGround)
		if grounded && !player.Grounded {
			player.JumpCharges = player.MaxJumpCharges
		}
		player.Grounded = grounded
	})
}
