package config

// Animation names understood by the presentation layer.
const (
	AnimIdle = "Idle"
	AnimWalk = "Walk"
	AnimJump = "Jump"
)

// AnimationTints colors the placeholder player box per animation.
var AnimationTints = map[string][3]float32{
	AnimIdle: {1, 1, 1},
	AnimWalk: {1, 0.9, 0.9},
	AnimJump: {0.85, 0.85, 1},
}
