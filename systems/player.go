package systems

import (
	"log"

	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartPlayer sends the initial health and inventory to the presentation.
// Call once after the player entity is created.
func StartPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	if player.GroundCheckOffset == nil {
		log.Printf("Warning: player has no ground check, grounding disabled")
	}

	health := components.Health.Get(e)
	inv := components.Inventory.Get(e)
	p := presenter(ecs)
	p.Initialize(health.Max)
	p.UpdateInventory(inv.Count(components.ItemHealingVial), inv.Count(components.ItemSunShield))
	p.PlayAnimation(cfg.AnimIdle)
}
