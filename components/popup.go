package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PopUpTriggerData shows Message the first time the player walks into it.
type PopUpTriggerData struct {
	Message   string
	Duration  float64
	Triggered bool
}

var PopUpTrigger = donburi.NewComponentType[PopUpTriggerData]()

// PopUpPhase is the step of the popup message sequence.
type PopUpPhase int

const (
	PopUpIdle PopUpPhase = iota
	PopUpWaiting // Previous message was cut short; holding before the next fade in
	PopUpFadingIn
	PopUpShowing
	PopUpFadingOut
)

// PopUpData is the singleton popup message state. Every phase is explicit
// so the message can be inspected or replaced at any point.
type PopUpData struct {
	Phase    PopUpPhase
	Text     string
	Duration float64 // Seconds the message stays fully visible
	Timer    float64 // Seconds left in Waiting or Showing
	Alpha    float64
	Fade     *gween.Tween

	// Message queued behind a Waiting phase
	Pending         string
	PendingDuration float64
}

var PopUp = donburi.NewComponentType[PopUpData]()
