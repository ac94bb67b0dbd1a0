package factory

import (
	"github.com/automoto/dracula/archetypes"
	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.Vec2{X: x, Y: cfg.Camera.FixedY},
		Follow:   true,
	})
	return camera
}
