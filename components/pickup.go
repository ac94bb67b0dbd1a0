package components

import "github.com/yohamta/donburi"

type PickupData struct {
	Item   ItemKind
	Amount int
}

var Pickup = donburi.NewComponentType[PickupData]()
