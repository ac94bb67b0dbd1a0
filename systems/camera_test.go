package systems

import (
	"testing"

	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/presentation"
	"github.com/automoto/dracula/shared/leveldata"
	"github.com/automoto/dracula/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestWorldToScreenFlipsY(t *testing.T) {
	camera := &components.CameraData{Position: math.Vec2{X: 10, Y: 4}}
	ppu := cfg.World.PixelsPerUnit

	x, y := WorldToScreen(camera, camera.Position)
	assert.Equal(t, float64(cfg.C.Width)/2, x)
	assert.Equal(t, float64(cfg.C.Height)/2, y)

	x, y = WorldToScreen(camera, math.Vec2{X: 11, Y: 5})
	assert.Equal(t, float64(cfg.C.Width)/2+ppu, x)
	assert.Equal(t, float64(cfg.C.Height)/2-ppu, y, "up in the world is up on screen")
}

func TestCameraFollowsPlayerInsideLevel(t *testing.T) {
	h := newHarness(t)
	level := &leveldata.Level{Width: 200, Height: 20}
	entry := h.ecs.World.Entry(h.ecs.World.Create(components.Level))
	components.Level.SetValue(entry, components.LevelData{Level: level})
	factory.CreateCamera(h.ecs, 0)

	h.body.pos = math.Vec2{X: 50, Y: 3}
	SnapCamera(h.ecs)
	camera := getOrCreateCamera(h.ecs)
	assert.Equal(t, math.Vec2{X: 50, Y: cfg.Camera.FixedY}, camera.Position)

	h.body.pos.X = 60
	UpdateCamera(h.ecs)
	assert.InDelta(t, 50+10*cfg.Camera.SmoothSpeed, camera.Position.X, 1e-9)

	// Never shows past the left edge
	halfW := float64(cfg.C.Width) / cfg.World.PixelsPerUnit / 2
	h.body.pos.X = 0
	SnapCamera(h.ecs)
	UpdateCamera(h.ecs)
	assert.Equal(t, halfW, camera.Position.X)
}

func TestCameraStopsWhenViewSaysSo(t *testing.T) {
	h := newHarness(t)
	view := presentation.NewView(0)
	update := NewUpdateView(view)
	factory.CreateCamera(h.ecs, 5)

	view.StopCameraFollow()
	update(h.ecs)
	h.body.pos.X = 40
	UpdateCamera(h.ecs)

	camera := getOrCreateCamera(h.ecs)
	assert.False(t, camera.Follow)
	assert.Equal(t, 5.0, camera.Position.X)
}
