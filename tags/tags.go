package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Hazard = donburi.NewTag().SetName("Hazard")
	Pickup = donburi.NewTag().SetName("Pickup")
	PopUp  = donburi.NewTag().SetName("PopUp")
	Blob   = donburi.NewTag().SetName("Blob")
)

// Resolv tags for trigger overlaps
const (
	ResolvPlayer = "player"
	ResolvHazard = "hazard"
	ResolvPickup = "pickup"
	ResolvPopUp  = "popup"
	ResolvBlob   = "blob"
)
