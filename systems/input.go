package systems

import (
	"github.com/automoto/dracula/components"
	cfg "github.com/automoto/dracula/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Left stick counts as the directional actions
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionMoveLeft] = true
		}
		if h > cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionMoveRight] = true
		}
		if v < -cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionMoveUp] = true
		}
		if v > cfg.Input.AnalogDeadzone {
			input.Current[cfg.ActionMoveDown] = true
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdatePlayerInput samples movement intent and latches jump presses for the
// next fixed step. Vertical input is recorded but not used for movement.
func UpdatePlayerInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	eachLivingPlayer(ecs, func(e *donburi.Entry) {
		player := components.Player.Get(e)

		var h float64
		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			h--
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			h++
		}
		player.Intent = math.Vec2{X: h, Y: 0}

		var v float64
		if GetAction(input, cfg.ActionMoveUp).Pressed {
			v++
		}
		if GetAction(input, cfg.ActionMoveDown).Pressed {
			v--
		}
		player.Vertical = v

		if GetAction(input, cfg.ActionJump).JustPressed {
			player.JumpRequested = true
		}
	})
}

// ActionJustPressed reports whether id went down this frame.
func ActionJustPressed(ecs *ecs.ECS, id cfg.ActionID) bool {
	return GetAction(getOrCreateInput(ecs), id).JustPressed
}
