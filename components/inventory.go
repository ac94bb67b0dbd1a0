package components

import "github.com/yohamta/donburi"

type InventoryData struct {
	Counts [ItemKindCount]int
}

// Count returns how many of kind are held, or 0 for an unknown kind.
func (d *InventoryData) Count(kind ItemKind) int {
	if !kind.Valid() {
		return 0
	}
	return d.Counts[kind]
}

var Inventory = donburi.NewComponentType[InventoryData]()
