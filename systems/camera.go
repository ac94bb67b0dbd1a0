package systems

import (
	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/presentation"
	"github.com/automoto/dracula/shared/gamemath"
	"github.com/automoto/dracula/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// getOrCreateCamera returns the singleton Camera component, creating if needed
func getOrCreateCamera(ecs *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Camera))
		components.Camera.Get(entry).Follow = true
	}
	return components.Camera.Get(entry)
}

// UpdateCamera eases the camera toward the player horizontally. Height is
// fixed and the view never leaves the level.
func UpdateCamera(e *ecs.ECS) {
	camera := getOrCreateCamera(e)
	if !camera.Follow {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Body.Get(playerEntry).Position().X

	camera.Position.X = gamemath.Lerp(camera.Position.X, target, cfg.Camera.SmoothSpeed)
	camera.Position.Y = cfg.Camera.FixedY

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Level == nil {
		return
	}
	halfW := float64(cfg.C.Width) / cfg.World.PixelsPerUnit / 2
	if level.Width > halfW*2 {
		camera.Position.X = gamemath.ClampFloat(camera.Position.X, halfW, level.Width-halfW)
	}
}

// SnapCamera centers the camera on the player without easing.
func SnapCamera(e *ecs.ECS) {
	camera := getOrCreateCamera(e)
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	camera.Position = math.Vec2{
		X: components.Body.Get(playerEntry).Position().X,
		Y: cfg.Camera.FixedY,
	}
}

// NewUpdateView returns a frame system that animates the view and applies
// its camera follow flag.
func NewUpdateView(view *presentation.View) ecs.System {
	return func(e *ecs.ECS) {
		view.Update(getOrCreateClock(e).FrameDelta)
		getOrCreateCamera(e).Follow = view.CameraFollow
	}
}

// WorldToScreen converts a world point to screen pixels. World Y points up.
func WorldToScreen(camera *components.CameraData, p math.Vec2) (float64, float64) {
	ppu := cfg.World.PixelsPerUnit
	x := (p.X-camera.Position.X)*ppu + float64(cfg.C.Width)/2
	y := float64(cfg.C.Height)/2 - (p.Y-camera.Position.Y)*ppu
	return x, y
}
