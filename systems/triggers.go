package systems

import (
	"log"

	"github.com/automoto/dracula/components"
	"github.com/automoto/dracula/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// overlapping returns the entries whose objects carry tag and overlap obj.
// Check narrows the search to shared cells; the box test is exact.
func overlapping(obj *resolv.Object, tag string) []*donburi.Entry {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []*donburi.Entry
	for _, other := range check.ObjectsByTags(tag) {
		if !boxesOverlap(obj, other) {
			continue
		}
		if e, ok := other.Data.(*donburi.Entry); ok && e.Valid() {
			out = append(out, e)
		}
	}
	return out
}

func boxesOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// UpdateHazards damages players standing in hazard areas. Damage lands on
// entry and then every Interval seconds of frame time while they stay.
func UpdateHazards(ecs *ecs.ECS) {
	dt := getOrCreateClock(ecs).FrameDelta

	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		hazard := components.Hazard.Get(e)
		obj := components.Object.Get(e)

		players := overlapping(obj.Object, tags.ResolvPlayer)
		if len(players) == 0 {
			hazard.Inside = false
			return
		}
		if !hazard.Inside {
			hazard.Inside = true
			hazard.Timer = hazard.Interval
		}

		hazard.Timer += dt
		if hazard.Timer < hazard.Interval {
			return
		}
		hazard.Timer = 0
		for _, p := range players {
			TakeDamage(ecs, p, hazard.Amount, hazard.Kind)
		}
	})
}

// UpdatePickups moves touched pickups into the player's inventory and
// removes them from the level.
func UpdatePickups(ecs *ecs.ECS) {
	space := getSpace(ecs)
	var collected []*donburi.Entry

	tags.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		pickup := components.Pickup.Get(e)
		obj := components.Object.Get(e)

		for _, p := range overlapping(obj.Object, tags.ResolvPlayer) {
			if CollectItem(ecs, p, pickup.Item, pickup.Amount) {
				collected = append(collected, e)
				return
			}
		}
	})

	for _, e := range collected {
		if space != nil {
			space.Remove(components.Object.Get(e).Object)
		}
		ecs.World.Remove(e.Entity())
	}
}

// UpdatePopUpTriggers shows a trigger's message the first time a player
// walks into it.
func UpdatePopUpTriggers(ecs *ecs.ECS) {
	tags.PopUp.Each(ecs.World, func(e *donburi.Entry) {
		trigger := components.PopUpTrigger.Get(e)
		if trigger.Triggered {
			return
		}
		obj := components.Object.Get(e)
		if len(overlapping(obj.Object, tags.ResolvPlayer)) == 0 {
			return
		}
		trigger.Triggered = true
		ShowMessage(ecs, trigger.Message, trigger.Duration)
	})
}

// UpdateBlobContacts hurts a player when a blob first touches them and turns
// the blob around.
func UpdateBlobContacts(ecs *ecs.ECS) {
	tags.Blob.Each(ecs.World, func(e *donburi.Entry) {
		blob := components.Blob.Get(e)
		obj := components.Object.Get(e)

		players := overlapping(obj.Object, tags.ResolvPlayer)
		touching := len(players) > 0
		if touching && !blob.Touching {
			for _, p := range players {
				TakeDamage(ecs, p, blob.Damage, components.DamageHazard)
			}
			blob.MovingRight = !blob.MovingRight
		}
		blob.Touching = touching
	})
}

// getSpace returns the resolv space, or nil if the level has none.
func getSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		log.Printf("Warning: no resolv space in world")
		return nil
	}
	return components.Space.Get(entry)
}
