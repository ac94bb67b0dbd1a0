package factory

import (
	"github.com/automoto/dracula/archetypes"
	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/shared/leveldata"
	"github.com/automoto/dracula/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard creates a damage area. Zero amount or interval fall back to
// the hazard defaults.
func CreateHazard(ecs *ecs.ECS, h leveldata.Hazard) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	amount := h.Amount
	if amount <= 0 {
		amount = cfg.Hazard.Amount
	}
	interval := h.Interval
	if interval <= 0 {
		interval = cfg.Hazard.Interval
	}
	components.Hazard.SetValue(hazard, components.HazardData{
		Kind:     h.Kind,
		Amount:   amount,
		Interval: interval,
	})

	addToSpace(ecs, newTrigger(hazard, h.X, h.Y, h.W, h.H, tags.ResolvHazard))
	return hazard
}

// CreatePickup creates a collectable centered in its rect.
func CreatePickup(ecs *ecs.ECS, p leveldata.Pickup) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)
	components.Pickup.SetValue(pickup, components.PickupData{
		Item:   p.Item,
		Amount: p.Amount,
	})

	size := cfg.Items.PickupSize
	x := p.X + p.W/2 - size/2
	y := p.Y + p.H/2 - size/2
	addToSpace(ecs, newTrigger(pickup, x, y, size, size, tags.ResolvPickup))
	return pickup
}

// CreatePopUpTrigger creates an area that shows a message on first entry.
func CreatePopUpTrigger(ecs *ecs.ECS, p leveldata.PopUp) *donburi.Entry {
	trigger := archetypes.PopUpTrigger.Spawn(ecs)
	components.PopUpTrigger.SetValue(trigger, components.PopUpTriggerData{
		Message:  p.Message,
		Duration: p.Duration,
	})
	addToSpace(ecs, newTrigger(trigger, p.X, p.Y, p.W, p.H, tags.ResolvPopUp))
	return trigger
}
