package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Facing is the horizontal direction the player sprite looks toward.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns -1 for left and 1 for right.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

type PlayerData struct {
	Facing Facing

	// Jumping
	JumpCharges    int
	MaxJumpCharges int
	JumpRequested  bool // Latched by the frame clock, cleared every step

	// Grounding. GroundCheckOffset is nil when no probe point was configured,
	// in which case Grounded never changes.
	Grounded          bool
	GroundCheckOffset *math.Vec2
	GroundCheckRadius float64

	// Normalized movement intent sampled each frame
	Intent math.Vec2
	// Vertical input, sampled but not yet used for movement
	Vertical float64
	// Walking tracks the last locomotion animation so it is only re-issued on change
	Walking bool

	// Tuning copied at spawn
	MovementForce float64
	JumpImpulse   float64
	MaxVelocity   float64
	FallDeathY    float64
}

var Player = donburi.NewComponentType[PlayerData]()
