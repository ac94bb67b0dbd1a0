package systems

import (
	"log"

	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TakeDamage lowers the entity's health by amount, clamped at zero. It does
// nothing once the entity is Dead, or for Sun damage while Sun immunity is
// active. Reaching zero triggers the game over exactly once. Reports whether
// health changed.
func TakeDamage(ecs *ecs.ECS, e *donburi.Entry, amount int, kind components.DamageKind) bool {
	if amount < 0 {
		log.Printf("Warning: TakeDamage: negative amount %d ignored", amount)
		return false
	}
	health := components.Health.Get(e)
	if !health.Alive() {
		return false
	}
	if kind == components.DamageSun && e.HasComponent(components.Immunity) &&
		components.Immunity.Get(e).Immune(components.DamageSun) {
		return false
	}

	health.Current = max(0, health.Current-amount)
	presenter(ecs).UpdateHealth(health.Current)
	PlaySFX(ecs, cfg.SoundTakingDamage)

	if !health.Alive() {
		handleGameOver(ecs, e, components.CauseDamage)
	}
	return true
}

// GetCurrentHealth returns the entity's current health.
func GetCurrentHealth(e *donburi.Entry) int {
	return components.Health.Get(e).Current
}

// UpdateOutOfBounds kills any living player that has fallen below the
// level's death height.
func UpdateOutOfBounds(ecs *ecs.ECS) {
	eachLivingPlayer(ecs, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		body := components.Body.Get(e)
		if body.Position().Y >= player.FallDeathY {
			return
		}
		components.Health.Get(e).Current = 0
		handleGameOver(ecs, e, components.CauseFell)
	})
}

// handleGameOver runs the Alive to Dead side effects. Callers must only
// invoke it on that transition.
func handleGameOver(ecs *ecs.ECS, e *donburi.Entry, cause components.GameOverCause) {
	p := presenter(ecs)
	p.UpdateHealth(0)
	p.ShowGameOver()
	p.HideGameplayUI()
	p.StopCameraFollow()
	PlaySFX(ecs, cfg.SoundDead)

	gameOver := getOrCreateGameOver(ecs)
	gameOver.Triggered = true
	gameOver.Cause = cause
	gameOver.At = getOrCreateClock(ecs).Elapsed

	log.Printf("Game Over! (%s)", cause)
}
