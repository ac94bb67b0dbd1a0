package components

import "github.com/yohamta/donburi"

// ClockData is the singleton simulation clock. FrameDelta is valid during
// frame systems and StepDelta during step systems.
type ClockData struct {
	FrameDelta float64
	StepDelta  float64
	Elapsed    float64
	Frames     int
	Steps      int
}

var Clock = donburi.NewComponentType[ClockData]()
