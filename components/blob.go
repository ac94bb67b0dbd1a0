package components

import "github.com/yohamta/donburi"

// BlobData is a patrolling enemy that hurts the player on contact.
type BlobData struct {
	Left, Right float64
	Speed       float64
	Damage      int
	MovingRight bool
	Touching    bool // Player overlapped last step
}

var Blob = donburi.NewComponentType[BlobData]()
