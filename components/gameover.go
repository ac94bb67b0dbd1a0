package components

import "github.com/yohamta/donburi"

// GameOverCause records why the player died.
type GameOverCause int

const (
	CauseNone GameOverCause = iota
	CauseDamage
	CauseFell
)

func (c GameOverCause) String() string {
	switch c {
	case CauseDamage:
		return "damage"
	case CauseFell:
		return "fell out of bounds"
	default:
		return "none"
	}
}

// GameOverData is the singleton record of the game over transition.
type GameOverData struct {
	Triggered bool
	Cause     GameOverCause
	At        float64 // Clock time of the transition
}

var GameOver = donburi.NewComponentType[GameOverData]()
