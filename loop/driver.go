// Package loop runs systems on two clocks: once per rendered frame with a
// variable delta, and zero or more times per frame on a fixed physics step.
package loop

import (
	"github.com/automoto/dracula/components"
	"github.com/yohamta/donburi/ecs"
)

type Driver struct {
	Frame []ecs.System
	Step  []ecs.System

	FixedDelta    float64
	MaxSteps      int
	MaxFrameDelta float64

	ecs *ecs.ECS
	acc float64
}

// New returns a driver for e. Systems are added with AddFrame and AddStep.
func New(e *ecs.ECS, fixedDelta float64, maxSteps int, maxFrameDelta float64) *Driver {
	return &Driver{
		ecs:           e,
		FixedDelta:    fixedDelta,
		MaxSteps:      maxSteps,
		MaxFrameDelta: maxFrameDelta,
	}
}

func (d *Driver) AddFrame(systems ...ecs.System) *Driver {
	d.Frame = append(d.Frame, systems...)
	return d
}

func (d *Driver) AddStep(systems ...ecs.System) *Driver {
	d.Step = append(d.Step, systems...)
	return d
}

// Advance runs one frame of dt seconds followed by as many fixed steps as
// the accumulated time allows, up to MaxSteps. Time beyond the cap is
// dropped. Returns the number of steps run.
func (d *Driver) Advance(dt float64) int {
	if dt < 0 {
		dt = 0
	}
	if d.MaxFrameDelta > 0 && dt > d.MaxFrameDelta {
		dt = d.MaxFrameDelta
	}
	clock := d.clock()
	clock.FrameDelta = dt
	clock.Elapsed += dt
	clock.Frames++
	for _, s := range d.Frame {
		s(d.ecs)
	}

	if d.FixedDelta <= 0 {
		return 0
	}
	d.acc += dt
	steps := 0
	for d.acc >= d.FixedDelta {
		if d.MaxSteps > 0 && steps >= d.MaxSteps {
			d.acc = 0
			break
		}
		clock = d.clock()
		clock.StepDelta = d.FixedDelta
		clock.Steps++
		for _, s := range d.Step {
			s(d.ecs)
		}
		d.acc -= d.FixedDelta
		steps++
	}
	return steps
}

// Accumulated returns the time carried over to the next frame.
func (d *Driver) Accumulated() float64 {
	return d.acc
}

func (d *Driver) clock() *components.ClockData {
	entry, ok := components.Clock.First(d.ecs.World)
	if !ok {
		entry = d.ecs.World.Entry(d.ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
