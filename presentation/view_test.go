package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewDefaults(t *testing.T) {
	v := NewView(0.25)

	assert.Equal(t, 1.0, v.Alpha)
	assert.True(t, v.GameplayUIVisible)
	assert.True(t, v.CameraFollow)
	assert.False(t, v.GameOverVisible)
	assert.Zero(t, v.HealthFill())
}

func TestViewHealthTween(t *testing.T) {
	v := NewView(0.5)
	v.Initialize(100)
	assert.Equal(t, 1.0, v.HealthFill())

	v.UpdateHealth(50)
	assert.Equal(t, 50, v.Health)
	assert.Equal(t, 100.0, v.HealthShown, "bar moves on Update")

	v.Update(0.25)
	assert.Less(t, v.HealthShown, 100.0)
	assert.Greater(t, v.HealthShown, 50.0)

	v.Update(0.5)
	assert.Equal(t, 50.0, v.HealthShown)
	assert.Equal(t, 0.5, v.HealthFill())
}

func TestViewSetHealthSnaps(t *testing.T) {
	v := NewView(0.5)
	v.Initialize(80)
	v.UpdateHealth(20)

	v.SetHealth(40)
	v.Update(1)

	assert.Equal(t, 40.0, v.HealthShown)
	assert.Equal(t, 0.5, v.HealthFill())
}

func TestViewWithoutTween(t *testing.T) {
	v := NewView(0)
	v.Initialize(100)

	v.UpdateHealth(30)

	assert.Equal(t, 30.0, v.HealthShown)
}

func TestViewNotifications(t *testing.T) {
	v := NewView(0)

	v.UpdateInventory(2, 1)
	v.PlayAnimation("Walk")
	v.SetSpriteAlpha(0.4)
	v.ShowGameOver()
	v.HideGameplayUI()
	v.StopCameraFollow()

	assert.Equal(t, 2, v.Vials)
	assert.Equal(t, 1, v.Shields)
	assert.Equal(t, "Walk", v.Animation)
	assert.Equal(t, 0.4, v.Alpha)
	assert.True(t, v.GameOverVisible)
	assert.False(t, v.GameplayUIVisible)
	assert.False(t, v.CameraFollow)
}

func TestDiscardAcceptsEverything(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard.Initialize(100)
		Discard.UpdateHealth(10)
		Discard.ShowGameOver()
	})
}
