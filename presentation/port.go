// Package presentation defines the one-way notifications the simulation
// sends to whatever draws it.
package presentation

// Port receives presentation events from the player core. Calls never feed
// back into the simulation.
type Port interface {
	// Initialize sets the health bar range and fills it.
	Initialize(maxHealth int)
	// SetHealth snaps the displayed health to value.
	SetHealth(value int)
	// UpdateHealth animates the displayed health toward value.
	UpdateHealth(value int)
	UpdateInventory(vials, shields int)
	PlayAnimation(name string)
	SetSpriteAlpha(alpha float64)
	ShowGameOver()
	HideGameplayUI()
	StopCameraFollow()
}

// Discard is a Port that ignores every notification.
var Discard Port = discard{}

type discard struct{}

func (discard) Initialize(int)           {}
func (discard) SetHealth(int)            {}
func (discard) UpdateHealth(int)         {}
func (discard) UpdateInventory(int, int) {}
func (discard) PlayAnimation(string)     {}
func (discard) SetSpriteAlpha(float64)   {}
func (discard) ShowGameOver()            {}
func (discard) HideGameplayUI()          {}
func (discard) StopCameraFollow()        {}
