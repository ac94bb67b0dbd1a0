package systems

import (
	"testing"

	"github.com/automoto/dracula/components"
	"github.com/automoto/dracula/shared/leveldata"
	"github.com/automoto/dracula/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func withSpace(e *ecs.ECS) {
	factory.CreateSpace(e, 20, 20, 1, 1)
}

func withPhysics(e *ecs.ECS) {
	factory.CreatePhysicsWorld(e)
}

// moveTo places the player body and its trigger box at x, y.
func (h *harness) moveTo(x, y float64) {
	h.body.pos = math.Vec2{X: x, Y: y}
	syncObjects(h.ecs)
}

func zone(x, y, w, hh float64) leveldata.Rect {
	return leveldata.Rect{X: x, Y: y, W: w, H: hh}
}

func TestHazardDamagesOnEntryThenEveryInterval(t *testing.T) {
	h := newHarness(t, withSpace)
	factory.CreateHazard(h.ecs, leveldata.Hazard{
		Rect:     zone(4, 4, 3, 3),
		Kind:     components.DamageHazard,
		Amount:   10,
		Interval: 1,
	})
	h.frame(0.25)

	h.moveTo(15, 5)
	UpdateHazards(h.ecs)
	assert.Equal(t, 100, GetCurrentHealth(h.player))

	h.moveTo(5, 5)
	UpdateHazards(h.ecs)
	assert.Equal(t, 90, GetCurrentHealth(h.player))

	for range 3 {
		UpdateHazards(h.ecs)
	}
	assert.Equal(t, 90, GetCurrentHealth(h.player))

	UpdateHazards(h.ecs)
	assert.Equal(t, 80, GetCurrentHealth(h.player))

	// Leaving and coming back hits again at once
	h.moveTo(15, 5)
	UpdateHazards(h.ecs)
	h.moveTo(5, 5)
	UpdateHazards(h.ecs)
	assert.Equal(t, 70, GetCurrentHealth(h.player))
}

func TestHazardTimerRestartsAfterHit(t *testing.T) {
	h := newHarness(t, withSpace)
	factory.CreateHazard(h.ecs, leveldata.Hazard{
		Rect:     zone(4, 4, 3, 3),
		Kind:     components.DamageHazard,
		Amount:   10,
		Interval: 1,
	})
	h.frame(0.3)
	h.moveTo(5, 5)

	UpdateHazards(h.ecs)
	assert.Equal(t, 90, GetCurrentHealth(h.player))

	for range 4 {
		UpdateHazards(h.ecs)
	}
	assert.Equal(t, 80, GetCurrentHealth(h.player))

	// Overshoot from the last hit is not carried over
	for range 3 {
		UpdateHazards(h.ecs)
	}
	assert.Equal(t, 80, GetCurrentHealth(h.player))
}

func TestHazardDefaults(t *testing.T) {
	h := newHarness(t, withSpace)
	e := factory.CreateHazard(h.ecs, leveldata.Hazard{Rect: zone(4, 4, 3, 3)})

	hazard := components.Hazard.Get(e)
	assert.Equal(t, components.DamageGeneric, hazard.Kind)
	assert.Positive(t, hazard.Amount)
	assert.Positive(t, hazard.Interval)
}

func TestSunHazardBlockedByShield(t *testing.T) {
	h := newHarness(t, withSpace)
	factory.CreateHazard(h.ecs, leveldata.Hazard{
		Rect:   zone(4, 4, 3, 3),
		Kind:   components.DamageSun,
		Amount: 25,
	})
	h.frame(0.25)
	require.True(t, UseItem(h.ecs, h.player, components.ItemSunShield))

	h.moveTo(5, 5)
	UpdateHazards(h.ecs)
	assert.Equal(t, 100, GetCurrentHealth(h.player))

	components.Immunity.Get(h.player).Windows[components.DamageSun] = components.ImmunityWindow{}
	for range 4 {
		UpdateHazards(h.ecs)
	}
	assert.Equal(t, 75, GetCurrentHealth(h.player))
}

func TestPickupCollectedAndRemoved(t *testing.T) {
	h := newHarness(t, withSpace)
	pickup := factory.CreatePickup(h.ecs, leveldata.Pickup{
		Rect:   zone(8, 4, 1, 1),
		Item:   components.ItemSunShield,
		Amount: 2,
	})

	h.moveTo(2, 5)
	UpdatePickups(h.ecs)
	require.True(t, pickup.Valid())

	h.moveTo(8.5, 4.5)
	UpdatePickups(h.ecs)

	assert.False(t, pickup.Valid())
	assert.Equal(t, 3, components.Inventory.Get(h.player).Count(components.ItemSunShield))
	assert.Equal(t, []string{"UpdateInventory(3,3)"}, h.ui.calls)

	UpdatePickups(h.ecs)
	assert.Equal(t, 3, components.Inventory.Get(h.player).Count(components.ItemSunShield))
}

func TestPopUpTriggerFiresOnce(t *testing.T) {
	h := newHarness(t, withSpace)
	trigger := factory.CreatePopUpTrigger(h.ecs, leveldata.PopUp{
		Rect:     zone(10, 2, 2, 4),
		Message:  "Beware the dawn",
		Duration: 3,
	})

	h.moveTo(11, 3)
	UpdatePopUpTriggers(h.ecs)

	popup := getOrCreatePopUp(h.ecs)
	assert.Equal(t, "Beware the dawn", popup.Text)
	assert.Equal(t, 3.0, popup.Duration)
	assert.True(t, components.PopUpTrigger.Get(trigger).Triggered)

	ShowMessage(h.ecs, "other", 1)
	h.moveTo(2, 3)
	UpdatePopUpTriggers(h.ecs)
	h.moveTo(11, 3)
	UpdatePopUpTriggers(h.ecs)
	assert.Equal(t, "other", popup.Pending)
}

func TestBlobContactDamagesOnceAndTurns(t *testing.T) {
	h := newHarness(t, withSpace, withPhysics)
	blob := factory.CreateBlob(h.ecs, leveldata.Blob{
		Start:  leveldata.Point{X: 5, Y: 4},
		Left:   2,
		Right:  8,
		Damage: 15,
	})
	require.NotNil(t, blob)

	h.moveTo(5, 5)
	UpdateBlobContacts(h.ecs)
	UpdateBlobContacts(h.ecs)

	assert.Equal(t, 85, GetCurrentHealth(h.player))
	assert.False(t, components.Blob.Get(blob).MovingRight)

	h.moveTo(15, 5)
	UpdateBlobContacts(h.ecs)
	h.moveTo(5, 5)
	UpdateBlobContacts(h.ecs)
	assert.Equal(t, 70, GetCurrentHealth(h.player))
	assert.True(t, components.Blob.Get(blob).MovingRight)
}

func TestBlobPatrolTurnsAtBounds(t *testing.T) {
	h := newHarness(t, withSpace, withPhysics)
	blob := factory.CreateBlob(h.ecs, leveldata.Blob{
		Start: leveldata.Point{X: 5, Y: 4},
		Left:  8,
		Right: 2,
		Speed: 3,
	})
	data := components.Blob.Get(blob)
	require.Equal(t, 2.0, data.Left)
	require.Equal(t, 8.0, data.Right)

	body := components.Body.Get(blob)
	UpdateBlobs(h.ecs)
	assert.Equal(t, 3.0, body.Velocity().X)

	data.Right = 4
	UpdateBlobs(h.ecs)
	assert.False(t, data.MovingRight)
	assert.Equal(t, -3.0, body.Velocity().X)
}
