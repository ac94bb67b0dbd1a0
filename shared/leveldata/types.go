// Package leveldata provides TMX level parsing for the player simulation.
// It has no dependencies on ebitengine, donburi, or resolv, only pure data.
// All positions are world units with Y pointing up; rectangles are anchored
// at their bottom-left corner.
package leveldata

import "github.com/automoto/dracula/shared/kinds"

// Level holds everything the scene needs to build a playable level.
type Level struct {
	Width, Height float64 // World units
	Ground        []Rect
	Hazards       []Hazard
	Pickups       []Pickup
	PopUps        []PopUp
	Blobs         []Blob
	Spawn         Point
}

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
	Slope      SlopeType
}

// SlopeType marks a ground rectangle as a ramp.
type SlopeType string

const (
	SlopeNone    SlopeType = ""
	SlopeUpRight SlopeType = "up_right"
	SlopeUpLeft  SlopeType = "up_left"
)

// Hazard is a zone that damages the player at a fixed interval while inside.
// Zero Amount or Interval means "use the configured default".
type Hazard struct {
	Rect
	Kind     kinds.DamageKind
	Amount   int
	Interval float64
}

type Pickup struct {
	Rect
	Item   kinds.ItemKind
	Amount int
}

// PopUp shows Message once when the player first enters it.
type PopUp struct {
	Rect
	Message  string
	Duration float64
}

// Blob patrols horizontally between Left and Right, starting at Start.
type Blob struct {
	Start       Point
	Left, Right float64
	Speed       float64
	Damage      int
}
