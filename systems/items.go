package systems

import (
	"log"

	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UseItem consumes one item of kind and applies its effect. Reports whether
// the item was used.
func UseItem(ecs *ecs.ECS, e *donburi.Entry, kind components.ItemKind) bool {
	if !components.Health.Get(e).Alive() {
		return false
	}
	switch kind {
	case components.ItemHealingVial:
		return useHealingVial(ecs, e)
	case components.ItemSunShield:
		return useSunShield(ecs, e)
	}
	log.Printf("Warning: UseItem: unknown item kind %d", int(kind))
	return false
}

// Heals a third of max health, capped at max.
func useHealingVial(ecs *ecs.ECS, e *donburi.Entry) bool {
	inv := components.Inventory.Get(e)
	health := components.Health.Get(e)
	if inv.Counts[components.ItemHealingVial] <= 0 {
		return false
	}
	if cfg.Items.VialRefusedAtFullHealth && health.Current >= health.Max {
		return false
	}

	inv.Counts[components.ItemHealingVial]--
	health.Current = min(health.Max, health.Current+health.Max/3)

	p := presenter(ecs)
	p.UpdateHealth(health.Current)
	p.UpdateInventory(inv.Count(components.ItemHealingVial), inv.Count(components.ItemSunShield))
	return true
}

// Starts a Sun immunity window and fades the sprite while it lasts. Refused
// while a window is already running.
func useSunShield(ecs *ecs.ECS, e *donburi.Entry) bool {
	inv := components.Inventory.Get(e)
	immunity := components.Immunity.Get(e)
	if inv.Counts[components.ItemSunShield] <= 0 || immunity.Immune(components.DamageSun) {
		return false
	}

	inv.Counts[components.ItemSunShield]--
	immunity.Windows[components.DamageSun] = components.ImmunityWindow{
		Active:    true,
		Remaining: cfg.Items.SunShieldDuration,
	}

	p := presenter(ecs)
	p.UpdateInventory(inv.Count(components.ItemHealingVial), inv.Count(components.ItemSunShield))
	p.SetSpriteAlpha(cfg.Items.ShieldAlpha)
	return true
}

// CollectItem adds amount items of kind to the inventory.
func CollectItem(ecs *ecs.ECS, e *donburi.Entry, kind components.ItemKind, amount int) bool {
	if !kind.Valid() {
		log.Printf("Warning: CollectItem: unknown item kind %d", int(kind))
		return false
	}
	if amount <= 0 {
		log.Printf("Warning: CollectItem: invalid amount %d for %s", amount, kind)
		return false
	}

	inv := components.Inventory.Get(e)
	inv.Counts[kind] += amount
	presenter(ecs).UpdateInventory(inv.Count(components.ItemHealingVial), inv.Count(components.ItemSunShield))
	PlaySFX(ecs, cfg.SoundPickup)
	return true
}

// UpdateImmunity counts down immunity windows on the frame clock. The sprite
// returns to full opacity once no window is left running.
func UpdateImmunity(ecs *ecs.ECS) {
	dt := getOrCreateClock(ecs).FrameDelta

	components.Immunity.Each(ecs.World, func(e *donburi.Entry) {
		immunity := components.Immunity.Get(e)
		expired := false
		active := false
		for k := range immunity.Windows {
			w := &immunity.Windows[k]
			if !w.Active {
				continue
			}
			w.Remaining -= dt
			if w.Remaining <= 0 {
				*w = components.ImmunityWindow{}
				expired = true
				continue
			}
			active = true
		}
		if expired && !active {
			presenter(ecs).SetSpriteAlpha(1)
		}
	})
}

// UpdateItemInput uses items on key press. The debug damage key is only
// honored when enabled in config.
func UpdateItemInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	eachLivingPlayer(ecs, func(e *donburi.Entry) {
		if GetAction(input, cfg.ActionUseVial).JustPressed {
			UseItem(ecs, e, components.ItemHealingVial)
		}
		if GetAction(input, cfg.ActionUseShield).JustPressed {
			UseItem(ecs, e, components.ItemSunShield)
		}
		if cfg.Debug.DamageKey && GetAction(input, cfg.ActionDebugDamage).JustPressed {
			TakeDamage(ecs, e, cfg.Debug.DamageAmount, components.DamageOther)
		}
	})
}
