package components

import "github.com/yohamta/donburi"

// HazardData is an area that damages the player every Interval seconds
// while they stay inside. Timer starts at Interval on entry so the first
// tick lands immediately.
type HazardData struct {
	Kind     DamageKind
	Amount   int
	Interval float64
	Timer    float64
	Inside   bool
}

var Hazard = donburi.NewComponentType[HazardData]()
