package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's trigger box in the resolv space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton resolv space used for trigger overlaps.
var Space = donburi.NewComponentType[resolv.Space]()
