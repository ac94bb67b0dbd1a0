package systems

import (
	"image"
	"image/color"

	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/automoto/dracula/presentation"
	"github.com/automoto/dracula/shared/leveldata"
	"github.com/automoto/dracula/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Source pixel for filled paths, created on first use
var whiteSubImage *ebiten.Image

func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// screenRect converts a world box (bottom-left corner) to a screen rectangle.
func screenRect(camera *components.CameraData, x, y, w, h float64) (float32, float32, float32, float32) {
	sx, sy := WorldToScreen(camera, math.Vec2{X: x, Y: y + h})
	ppu := cfg.World.PixelsPerUnit
	return float32(sx), float32(sy), float32(w * ppu), float32(h * ppu)
}

// DrawLevel renders the background and ground geometry.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Night)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Level == nil {
		return
	}
	camera := getOrCreateCamera(ecs)

	for _, r := range level.Ground {
		if r.Slope != leveldata.SlopeNone {
			drawSlope(screen, camera, r, cfg.Stone)
			continue
		}
		x, y, w, h := screenRect(camera, r.X, r.Y, r.W, r.H)
		vector.DrawFilledRect(screen, x, y, w, h, cfg.Stone, false)
	}
}

func drawSlope(screen *ebiten.Image, camera *components.CameraData, r leveldata.Rect, c color.RGBA) {
	corners := []math.Vec2{{X: r.X, Y: r.Y}, {X: r.X + r.W, Y: r.Y}}
	if r.Slope == leveldata.SlopeUpRight {
		corners = append(corners, math.Vec2{X: r.X + r.W, Y: r.Y + r.H})
	} else {
		corners = append(corners, math.Vec2{X: r.X, Y: r.Y + r.H})
	}

	path := vector.Path{}
	for i, p := range corners {
		x, y := WorldToScreen(camera, p)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
			continue
		}
		path.LineTo(float32(x), float32(y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, fillSource(), &ebiten.DrawTrianglesOptions{})
}

// DrawTriggers renders hazard areas and pickups.
func DrawTriggers(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := getOrCreateCamera(ecs)

	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		c := cfg.Red
		if components.Hazard.Get(e).Kind == components.DamageSun {
			c = cfg.SunOrange
		}
		x, y, w, h := screenRect(camera, o.X, o.Y, o.W, o.H)
		vector.DrawFilledRect(screen, x, y, w, h, c, false)
	})

	tags.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		c := cfg.Gold
		if components.Pickup.Get(e).Item == components.ItemHealingVial {
			c = cfg.LightRed
		}
		x, y, w, h := screenRect(camera, o.X, o.Y, o.W, o.H)
		vector.DrawFilledRect(screen, x, y, w, h, c, false)
	})
}

// NewDrawActors returns a renderer for blobs and the player. The player box
// takes its tint from the view's animation and its opacity from the view.
func NewDrawActors(view *presentation.View) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		camera := getOrCreateCamera(ecs)

		tags.Blob.Each(ecs.World, func(e *donburi.Entry) {
			drawBodyBox(screen, camera, components.Body.Get(e), cfg.BlobGreen, 1)
		})

		tags.Player.Each(ecs.World, func(e *donburi.Entry) {
			c := cfg.PlayerPurple
			if tint, ok := cfg.AnimationTints[view.Animation]; ok {
				c.R = uint8(float32(c.R) * tint[0])
				c.G = uint8(float32(c.G) * tint[1])
				c.B = uint8(float32(c.B) * tint[2])
			}
			drawBodyBox(screen, camera, components.Body.Get(e), c, view.Alpha)

			// Eye on the facing side
			player := components.Player.Get(e)
			pos := components.Body.Get(e).Position()
			ex, ey := WorldToScreen(camera, math.Vec2{X: pos.X + player.Facing.Sign()*0.2, Y: pos.Y + 0.25})
			vector.DrawFilledRect(screen, float32(ex)-2, float32(ey)-2, 4, 4, fade(cfg.White, view.Alpha), false)
		})
	}
}

func drawBodyBox(screen *ebiten.Image, camera *components.CameraData, body *components.BodyData, c color.RGBA, alpha float64) {
	pos := body.Position()
	x, y, w, h := screenRect(camera, pos.X-body.Width/2, pos.Y-body.Height/2, body.Width, body.Height)
	vector.DrawFilledRect(screen, x, y, w, h, fade(c, alpha), false)
}

// DrawDebug outlines every trigger box when enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBodies {
		return
	}
	camera := getOrCreateCamera(ecs)
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if o.Object == nil {
			return
		}
		x, y, w, h := screenRect(camera, o.X, o.Y, o.W, o.H)
		vector.StrokeRect(screen, x, y, w, h, 1, cfg.White, false)
	})
}
