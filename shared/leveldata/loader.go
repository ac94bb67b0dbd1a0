package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/automoto/dracula/shared/kinds"
	"github.com/lafriks/go-tiled"
)

// Object group names read from the TMX file.
const (
	GroupGround      = "Ground"
	GroupHazards     = "Hazards"
	GroupPickups     = "Pickups"
	GroupPopUps      = "PopUps"
	GroupBlobs       = "Blobs"
	GroupPlayerSpawn = "PlayerSpawn"
)

// Load parses a TMX file from fsys. One tile is one world unit, and Tiled's
// Y-down pixel coordinates are flipped so Y points up from the map bottom.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size must be positive", tmxPath)
	}

	c := converter{
		tileW:    float64(levelMap.TileWidth),
		tileH:    float64(levelMap.TileHeight),
		heightPx: float64(levelMap.Height * levelMap.TileHeight),
	}
	level := &Level{
		Width:  float64(levelMap.Width),
		Height: float64(levelMap.Height),
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case GroupGround:
				r := c.rect(o)
				slope := SlopeType(o.Properties.GetString("slope"))
				switch slope {
				case SlopeNone, SlopeUpRight, SlopeUpLeft:
				default:
					return nil, fmt.Errorf("%s: ground object %d: unknown slope %q", tmxPath, o.ID, slope)
				}
				r.Slope = slope
				level.Ground = append(level.Ground, r)

			case GroupHazards:
				kind := kinds.DamageGeneric
				if name := o.Properties.GetString("kind"); name != "" {
					if kind, err = kinds.ParseDamageKind(name); err != nil {
						return nil, fmt.Errorf("%s: hazard object %d: %w", tmxPath, o.ID, err)
					}
				}
				level.Hazards = append(level.Hazards, Hazard{
					Rect:     c.rect(o),
					Kind:     kind,
					Amount:   o.Properties.GetInt("amount"),
					Interval: o.Properties.GetFloat("interval"),
				})

			case GroupPickups:
				item, err := kinds.ParseItemKind(o.Properties.GetString("item"))
				if err != nil {
					return nil, fmt.Errorf("%s: pickup object %d: %w", tmxPath, o.ID, err)
				}
				amount := o.Properties.GetInt("amount")
				if amount <= 0 {
					amount = 1
				}
				level.Pickups = append(level.Pickups, Pickup{
					Rect:   c.rect(o),
					Item:   item,
					Amount: amount,
				})

			case GroupPopUps:
				level.PopUps = append(level.PopUps, PopUp{
					Rect:     c.rect(o),
					Message:  o.Properties.GetString("message"),
					Duration: o.Properties.GetFloat("duration"),
				})

			case GroupBlobs:
				r := c.rect(o)
				level.Blobs = append(level.Blobs, Blob{
					Start:  Point{X: r.X + r.W/2, Y: r.Y},
					Left:   r.X,
					Right:  r.X + r.W,
					Speed:  o.Properties.GetFloat("speed"),
					Damage: o.Properties.GetInt("damage"),
				})

			case GroupPlayerSpawn:
				if spawnFound {
					continue
				}
				level.Spawn = c.point(o.X, o.Y)
				spawnFound = true
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: no %s object defined", tmxPath, GroupPlayerSpawn)
	}
	return level, nil
}

type converter struct {
	tileW, tileH float64
	heightPx     float64
}

func (c converter) point(x, y float64) Point {
	return Point{X: x / c.tileW, Y: (c.heightPx - y) / c.tileH}
}

func (c converter) rect(o *tiled.Object) Rect {
	return Rect{
		X: o.X / c.tileW,
		Y: (c.heightPx - o.Y - o.Height) / c.tileH,
		W: o.Width / c.tileW,
		H: o.Height / c.tileH,
	}
}
